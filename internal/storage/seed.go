package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"pos-tracker/internal/models"
)

// LoadSeed reads the one-time seed catalog from a JSON file. A missing or
// empty path yields no products, which is not an error: seeding is
// optional and only applies when no prior snapshot exists.
func LoadSeed(path string) ([]models.Product, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return products, nil
}

// Bootstrap returns the session's starting state: the persisted snapshot
// when one exists, otherwise the optional seed catalog. Transactions are
// loaded independently of the products snapshot, matching the two
// separately stored collections.
func Bootstrap(fs *FileStore, seedPath string) ([]models.Product, []models.Transaction, error) {
	products, transactions, err := fs.Load()
	if err != nil {
		return nil, nil, err
	}
	if fs.HasProducts() {
		return products, transactions, nil
	}

	seeded, err := LoadSeed(seedPath)
	if err != nil {
		return nil, nil, err
	}
	return seeded, transactions, nil
}
