package store

import (
	"time"

	"pos-tracker/internal/models"

	"github.com/google/uuid"
)

// appendEntry records a stock-affecting action. Caller must hold the write
// lock; the product snapshot is taken after the mutation so RemainingStock
// reflects the new quantity.
func (s *Store) appendEntry(p models.Product, action string, quantity int) models.Transaction {
	entry := models.Transaction{
		ID:             uuid.New().String(),
		ProductID:      p.ID,
		ProductName:    p.Name,
		Action:         action,
		Quantity:       quantity,
		RemainingStock: p.Quantity,
		UnitPrice:      p.Price,
		Timestamp:      time.Now().UTC(),
	}
	s.transactions = append(s.transactions, entry)
	return entry
}

// Sell decrements stock for a product and appends the matching ledger
// entry as one atomic step. Under the clamp policy the realized decrement
// is capped at the stock on hand while the entry records the requested
// quantity; under the reject policy an oversell fails with no state change.
func (s *Store) Sell(id int64, quantity int, policy OversellPolicy) (models.Product, models.Transaction, error) {
	if quantity <= 0 {
		return models.Product{}, models.Transaction{}, &models.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return models.Product{}, models.Transaction{}, &models.NotFoundError{Kind: "product", ID: id}
	}

	product := s.products[pos]
	if policy == OversellReject && quantity > product.Quantity {
		return models.Product{}, models.Transaction{}, &models.ValidationError{
			Field:  "quantity",
			Reason: "exceeds stock on hand",
		}
	}

	newQuantity := product.Quantity - quantity
	if newQuantity < 0 {
		newQuantity = 0
	}
	product.Quantity = newQuantity
	s.products[pos] = product

	entry := s.appendEntry(product, models.ActionSold, quantity)
	return product, entry, nil
}

// Restock increments stock for a product and appends the matching ledger
// entry as one atomic step.
func (s *Store) Restock(id int64, quantity int) (models.Product, models.Transaction, error) {
	if quantity <= 0 {
		return models.Product{}, models.Transaction{}, &models.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return models.Product{}, models.Transaction{}, &models.NotFoundError{Kind: "product", ID: id}
	}

	product := s.products[pos]
	product.Quantity += quantity
	s.products[pos] = product

	entry := s.appendEntry(product, models.ActionRestocked, quantity)
	return product, entry, nil
}

// Transactions returns a copy of the ledger in append order
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	transactions := make([]models.Transaction, len(s.transactions))
	copy(transactions, s.transactions)
	return transactions
}
