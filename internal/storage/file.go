package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pos-tracker/internal/models"
)

const (
	productsFile     = "products.json"
	transactionsFile = "transactions.json"
)

// FileStore persists catalog and ledger snapshots as two JSON documents
// under a data directory. It mirrors the in-memory state; it is never the
// source of truth while the session is running.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the persisted snapshot. Missing files yield empty state, not
// an error, so a fresh session starts cleanly.
func (f *FileStore) Load() ([]models.Product, []models.Transaction, error) {
	var products []models.Product
	if err := readJSON(filepath.Join(f.dir, productsFile), &products); err != nil {
		return nil, nil, fmt.Errorf("failed to load products: %w", err)
	}

	var transactions []models.Transaction
	if err := readJSON(filepath.Join(f.dir, transactionsFile), &transactions); err != nil {
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return products, transactions, nil
}

// Save rewrites both snapshot files. Each write goes through a temp file
// and a rename so a crash mid-write never leaves a truncated document.
func (f *FileStore) Save(products []models.Product, transactions []models.Transaction) error {
	if products == nil {
		products = []models.Product{}
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	if err := writeJSON(filepath.Join(f.dir, productsFile), products); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	if err := writeJSON(filepath.Join(f.dir, transactionsFile), transactions); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// HasProducts reports whether a products snapshot exists on disk. The seed
// file is only consulted when it does not.
func (f *FileStore) HasProducts() bool {
	_, err := os.Stat(filepath.Join(f.dir, productsFile))
	return err == nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
