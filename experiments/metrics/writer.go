package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// PoolConfig identifies one worker-pool size under measurement.
type PoolConfig struct {
	ID      int
	Workers int
}

type BatchRecord struct {
	Run    string // Shared by every record of one experiment run
	Config int    // PoolConfig.ID
	Batch  int    // Batch ordinal within the run, starting at 1
	BatchMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WritePoolConfigs(configs []PoolConfig) error {
	// Create a file
	path := filepath.Join(w.baseDir, "pool_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create pool configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "workers"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write pool configs header: %w", err)
	}

	// Write each row
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Workers),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write pool config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteBatchRecords(records []BatchRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "batch_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create batch records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"run", "config", "batch", "paths", "cache_hits", "computations", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write batch records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			record.Run,
			strconv.Itoa(record.Config),
			strconv.Itoa(record.Batch),
			strconv.Itoa(record.Paths),
			strconv.Itoa(record.CacheHits),
			strconv.Itoa(record.Computations),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write batch record row: %w", err)
		}
	}

	return nil
}
