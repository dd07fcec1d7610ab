package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func FindIndexFunc[T any](slice []T, pred func(T) bool) int {
	for i, v := range slice {
		if pred(v) {
			return i
		}
	}
	return -1
}
