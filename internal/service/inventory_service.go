package service

import (
	"context"
	"errors"
	"time"

	"pos-tracker/internal/models"
	"pos-tracker/internal/store"
	"pos-tracker/internal/util"

	"go.uber.org/zap"
)

// Persistence mirrors the in-memory state to durable storage. Load returns
// empty collections when nothing is stored yet.
type Persistence interface {
	Load() ([]models.Product, []models.Transaction, error)
	Save(products []models.Product, transactions []models.Transaction) error
}

// InventoryService is the operation contract the presentation layer calls.
// It wraps the store with logging, metrics, tracing and the post-mutation
// persistence hook.
type InventoryService struct {
	store     *store.Store
	persister Persistence
	policy    store.OversellPolicy
	notify    chan<- models.Transaction
	logger    *zap.Logger
}

// NewInventoryService creates a new inventory service. The notify channel
// receives every appended ledger entry (best effort); it may be nil.
func NewInventoryService(
	st *store.Store,
	persister Persistence,
	policy store.OversellPolicy,
	notify chan<- models.Transaction,
) *InventoryService {
	return &InventoryService{
		store:     st,
		persister: persister,
		policy:    policy,
		notify:    notify,
		logger:    util.GetLogger(),
	}
}

// AddProduct validates the draft and inserts it into the catalog
func (s *InventoryService) AddProduct(ctx context.Context, draft models.ProductDraft) (models.Product, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.AddProduct")
	defer span.End()

	product, err := s.store.AddProduct(draft)
	if err != nil {
		util.OperationsFailedTotal.WithLabelValues("add", failureReason(err)).Inc()
		return models.Product{}, err
	}

	util.ProductsCreatedTotal.Inc()
	s.logger.Info("Product added",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("quantity", product.Quantity))

	return product, s.afterMutation(ctx)
}

// UpdateProduct replaces the mutable fields of an existing product
func (s *InventoryService) UpdateProduct(ctx context.Context, id int64, fields models.ProductDraft) (models.Product, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.UpdateProduct")
	defer span.End()

	product, err := s.store.UpdateProduct(id, fields)
	if err != nil {
		util.OperationsFailedTotal.WithLabelValues("update", failureReason(err)).Inc()
		return models.Product{}, err
	}

	util.ProductsUpdatedTotal.Inc()
	s.logger.Info("Product updated", zap.Int64("product_id", product.ID))

	return product, s.afterMutation(ctx)
}

// DeleteProduct removes a product from the catalog. Ledger entries that
// reference it keep their denormalized name and price snapshots.
func (s *InventoryService) DeleteProduct(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "InventoryService.DeleteProduct")
	defer span.End()

	if err := s.store.RemoveProduct(id); err != nil {
		util.OperationsFailedTotal.WithLabelValues("delete", failureReason(err)).Inc()
		return err
	}

	util.ProductsDeletedTotal.Inc()
	s.logger.Info("Product deleted", zap.Int64("product_id", id))

	return s.afterMutation(ctx)
}

// SellProduct records a sale: the quantity mutation and the ledger append
// happen as one atomic store operation.
func (s *InventoryService) SellProduct(ctx context.Context, id int64, quantity int) (models.Product, models.Transaction, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.SellProduct")
	defer span.End()

	before, _ := s.store.GetProduct(id)

	product, entry, err := s.store.Sell(id, quantity, s.policy)
	if err != nil {
		util.OperationsFailedTotal.WithLabelValues("sell", failureReason(err)).Inc()
		return models.Product{}, models.Transaction{}, err
	}

	util.SalesTotal.Inc()
	util.ItemsSoldTotal.Add(float64(quantity))
	if quantity > before.Quantity {
		s.noteClamp(product, quantity)
	}

	s.logger.Info("Sale recorded",
		zap.Int64("product_id", product.ID),
		zap.String("product", entry.ProductName),
		zap.Int("quantity", quantity),
		zap.Int("remaining", entry.RemainingStock))

	s.publish(entry)
	return product, entry, s.afterMutation(ctx)
}

// RestockProduct records a restock, mutating stock and appending the
// ledger entry atomically.
func (s *InventoryService) RestockProduct(ctx context.Context, id int64, quantity int) (models.Product, models.Transaction, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.RestockProduct")
	defer span.End()

	product, entry, err := s.store.Restock(id, quantity)
	if err != nil {
		util.OperationsFailedTotal.WithLabelValues("restock", failureReason(err)).Inc()
		return models.Product{}, models.Transaction{}, err
	}

	util.RestocksTotal.Inc()
	s.logger.Info("Restock recorded",
		zap.Int64("product_id", product.ID),
		zap.Int("quantity", quantity),
		zap.Int("remaining", entry.RemainingStock))

	s.publish(entry)
	return product, entry, s.afterMutation(ctx)
}

// Products returns the catalog in insertion order
func (s *InventoryService) Products(ctx context.Context) []models.Product {
	return s.store.Products()
}

// Transactions returns the ledger in append order
func (s *InventoryService) Transactions(ctx context.Context) []models.Transaction {
	return s.store.Transactions()
}

// afterMutation snapshots the state to the persistence adapter. The
// in-memory mutation has already committed; a save failure is surfaced as
// a PersistenceError but does not roll anything back, since the adapter
// only mirrors the session state.
func (s *InventoryService) afterMutation(ctx context.Context) error {
	_, span := util.StartSpan(ctx, "InventoryService.saveSnapshot")
	defer span.End()

	products, transactions := s.store.Snapshot()
	util.LowStockProducts.Set(float64(countLowStock(products)))

	start := time.Now()
	err := s.persister.Save(products, transactions)
	util.SnapshotSaveLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		util.SnapshotFailuresTotal.Inc()
		s.logger.Error("Failed to save snapshot", zap.Error(err))
		return &models.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// publish offers a ledger entry to the notification channel without
// blocking; a full channel drops the entry.
func (s *InventoryService) publish(entry models.Transaction) {
	if s.notify == nil {
		return
	}
	select {
	case s.notify <- entry:
	default:
		s.logger.Warn("Alert channel full, dropping notification",
			zap.String("entry_id", entry.ID))
	}
}

func (s *InventoryService) noteClamp(product models.Product, requested int) {
	util.SalesClampedTotal.Inc()
	s.logger.Warn("Sale clamped to stock on hand",
		zap.Int64("product_id", product.ID),
		zap.Int("requested", requested))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	case errors.Is(err, models.ErrValidation):
		return "invalid_input"
	default:
		return "error"
	}
}
