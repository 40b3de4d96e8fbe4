package store

import (
	"sort"
	"strings"

	"pos-tracker/internal/models"
)

func validateDraft(draft models.ProductDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return &models.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if draft.Price < 0 {
		return &models.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if draft.Quantity < 0 {
		return &models.ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	return nil
}

// AddProduct validates the draft, assigns the next id and inserts the
// product at the end of the catalog.
func (s *Store) AddProduct(draft models.ProductDraft) (models.Product, error) {
	if err := validateDraft(draft); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
		ID:          s.nextID,
		Name:        draft.Name,
		Description: draft.Description,
		Category:    draft.Category,
		Price:       draft.Price,
		Quantity:    draft.Quantity,
	}
	s.nextID++
	s.index[product.ID] = len(s.products)
	s.products = append(s.products, product)
	return product, nil
}

// UpdateProduct replaces all mutable fields of the product with the given
// id. The id itself is immutable.
func (s *Store) UpdateProduct(id int64, fields models.ProductDraft) (models.Product, error) {
	if err := validateDraft(fields); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return models.Product{}, &models.NotFoundError{Kind: "product", ID: id}
	}

	product := models.Product{
		ID:          id,
		Name:        fields.Name,
		Description: fields.Description,
		Category:    fields.Category,
		Price:       fields.Price,
		Quantity:    fields.Quantity,
	}
	s.products[pos] = product
	return product, nil
}

// RemoveProduct deletes the product with the given id. Past ledger entries
// referencing it stay valid through their denormalized snapshots.
func (s *Store) RemoveProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return &models.NotFoundError{Kind: "product", ID: id}
	}

	s.products = append(s.products[:pos], s.products[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.products); i++ {
		s.index[s.products[i].ID] = i
	}
	return nil
}

// GetProduct returns the product with the given id
func (s *Store) GetProduct(id int64) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return models.Product{}, &models.NotFoundError{Kind: "product", ID: id}
	}
	return s.products[pos], nil
}

// Products returns a copy of the catalog in insertion order
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

// Sort keys accepted by SortProducts
const (
	SortByName  = "name"
	SortByPrice = "price"
	SortByStock = "stock"
)

// SortProducts orders a product slice in place for display. Sorting is a
// view concern; the catalog itself always stays in insertion order.
func SortProducts(products []models.Product, key string) {
	switch key {
	case SortByName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	case SortByPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortByStock:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Quantity < products[j].Quantity
		})
	}
}
