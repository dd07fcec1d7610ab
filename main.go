package main

import (
	"fmt"
	"rewardtree/experiments"
	"rewardtree/pool"
	"rewardtree/tree"
	"rewardtree/treeview"
)

// visit is a minimal payload recording how a node came to exist.
type visit struct {
	Origin string
}

func main() {
	demo()
	experiments.RunBatchSpeedup()
}

// demo grows a small tree through both insertion entry points and prints
// the result.
func demo() {
	fmt.Printf("Growing demo tree...\n")

	t := tree.New(visit{Origin: "root"}, experiments.SimulatedReward)

	reward, err := t.GetOrCreate(tree.Path{1}, func() visit {
		return visit{Origin: "single"}
	})
	if err != nil {
		panic(fmt.Sprintf("failed to insert path: %v", err))
	}
	fmt.Printf("Path [1] rewarded %.4f\n", reward)

	paths := []tree.Path{{1, 2, 3}, {1, 2, 4}, {1}}
	rewards, err := t.GetOrCreateBatch(paths, func() visit {
		return visit{Origin: "batch"}
	}, pool.New(4))
	if err != nil {
		panic(fmt.Sprintf("failed to insert batch: %v", err))
	}
	for i, path := range paths {
		fmt.Printf("Path %v rewarded %.4f\n", path, rewards[i])
	}

	fmt.Println(treeview.Format(t))
}
