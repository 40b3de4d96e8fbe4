package store

import (
	"testing"

	"pos-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWith(t *testing.T, quantity int) (*Store, models.Product) {
	t.Helper()
	s := NewStore()
	p, err := s.AddProduct(models.ProductDraft{Name: "Wings", Category: "Food", Price: 50, Quantity: quantity})
	require.NoError(t, err)
	return s, p
}

func TestSell(t *testing.T) {
	s, p := newStoreWith(t, 20)

	product, entry, err := s.Sell(p.ID, 5, OversellClamp)
	require.NoError(t, err)

	assert.Equal(t, 15, product.Quantity)
	assert.Equal(t, models.ActionSold, entry.Action)
	assert.Equal(t, 5, entry.Quantity)
	assert.Equal(t, 15, entry.RemainingStock)
	assert.Equal(t, p.ID, entry.ProductID)
	assert.Equal(t, "Wings", entry.ProductName)
	assert.Equal(t, 50.0, entry.UnitPrice)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())

	require.Len(t, s.Transactions(), 1)
}

func TestSellClampsOversell(t *testing.T) {
	s, p := newStoreWith(t, 3)

	product, entry, err := s.Sell(p.ID, 10, OversellClamp)
	require.NoError(t, err)

	assert.Equal(t, 0, product.Quantity, "stock clamps at zero")
	assert.Equal(t, 10, entry.Quantity, "entry records the requested quantity")
	assert.Equal(t, 0, entry.RemainingStock)
}

func TestSellRejectPolicy(t *testing.T) {
	s, p := newStoreWith(t, 3)

	_, _, err := s.Sell(p.ID, 10, OversellReject)
	assert.ErrorIs(t, err, models.ErrValidation)

	got, err := s.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity, "rejected sale must not mutate stock")
	assert.Empty(t, s.Transactions(), "rejected sale must not append an entry")

	// an in-range sale still works under reject
	product, _, err := s.Sell(p.ID, 3, OversellReject)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Quantity)
}

func TestSellValidation(t *testing.T) {
	s, p := newStoreWith(t, 20)

	_, _, err := s.Sell(p.ID, 0, OversellClamp)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, _, err = s.Sell(p.ID, -4, OversellClamp)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, _, err = s.Sell(999, 1, OversellClamp)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.Empty(t, s.Transactions(), "failed sells must not touch the ledger")
}

func TestRestock(t *testing.T) {
	s, p := newStoreWith(t, 3)

	product, entry, err := s.Restock(p.ID, 12)
	require.NoError(t, err)

	assert.Equal(t, 15, product.Quantity)
	assert.Equal(t, models.ActionRestocked, entry.Action)
	assert.Equal(t, 12, entry.Quantity)
	assert.Equal(t, 15, entry.RemainingStock)
}

func TestRestockValidation(t *testing.T) {
	s, p := newStoreWith(t, 3)

	_, _, err := s.Restock(p.ID, 0)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, _, err = s.Restock(p.ID, -5)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, _, err = s.Restock(99, 5)
	assert.ErrorIs(t, err, models.ErrNotFound)

	got, _ := s.GetProduct(p.ID)
	assert.Equal(t, 3, got.Quantity)
	assert.Empty(t, s.Transactions())
}

func TestLedgerSnapshotSurvivesRename(t *testing.T) {
	s, p := newStoreWith(t, 20)

	_, entry, err := s.Sell(p.ID, 1, OversellClamp)
	require.NoError(t, err)

	_, err = s.UpdateProduct(p.ID, models.ProductDraft{Name: "Hot Wings", Category: "Food", Price: 60, Quantity: 19})
	require.NoError(t, err)
	require.NoError(t, s.RemoveProduct(p.ID))

	got := s.Transactions()
	require.Len(t, got, 1)
	assert.Equal(t, entry.ProductName, got[0].ProductName, "entry keeps the name snapshot")
	assert.Equal(t, 50.0, got[0].UnitPrice, "entry keeps the price snapshot")
}

// One entry per mutating call, requested quantity recorded even when
// clamped, and stock never below zero.
func TestLedgerGrowthAndQuantityInvariants(t *testing.T) {
	s, p := newStoreWith(t, 10)

	ops := []struct {
		action string
		qty    int
	}{
		{"sell", 4}, {"restock", 2}, {"sell", 20}, {"restock", 7}, {"sell", 1},
	}

	for _, op := range ops {
		var err error
		if op.action == "sell" {
			_, _, err = s.Sell(p.ID, op.qty, OversellClamp)
		} else {
			_, _, err = s.Restock(p.ID, op.qty)
		}
		require.NoError(t, err)

		got, _ := s.GetProduct(p.ID)
		assert.GreaterOrEqual(t, got.Quantity, 0)
	}

	assert.Len(t, s.Transactions(), len(ops))
}

func TestLedgerTimestampsNonDecreasing(t *testing.T) {
	s, p := newStoreWith(t, 100)

	for i := 0; i < 20; i++ {
		_, _, err := s.Sell(p.ID, 1, OversellClamp)
		require.NoError(t, err)
	}

	transactions := s.Transactions()
	for i := 1; i < len(transactions); i++ {
		assert.False(t, transactions[i].Timestamp.Before(transactions[i-1].Timestamp))
	}
}

// Replaying the same operation sequence from the same starting state must
// produce the same catalog and the same ledger shape.
func TestDeterministicReplay(t *testing.T) {
	run := func() ([]models.Product, []models.Transaction) {
		s := NewStore()
		wings, _ := s.AddProduct(models.ProductDraft{Name: "Wings", Price: 50, Quantity: 20})
		cola, _ := s.AddProduct(models.ProductDraft{Name: "Cola", Price: 15, Quantity: 8})
		s.Sell(wings.ID, 5, OversellClamp)
		s.Restock(cola.ID, 10)
		s.Sell(cola.ID, 30, OversellClamp)
		s.RemoveProduct(wings.ID)
		return s.Snapshot()
	}

	productsA, transactionsA := run()
	productsB, transactionsB := run()

	assert.Equal(t, productsA, productsB)

	require.Equal(t, len(transactionsA), len(transactionsB))
	for i := range transactionsA {
		a, b := transactionsA[i], transactionsB[i]
		assert.Equal(t, a.ProductID, b.ProductID)
		assert.Equal(t, a.ProductName, b.ProductName)
		assert.Equal(t, a.Action, b.Action)
		assert.Equal(t, a.Quantity, b.Quantity)
		assert.Equal(t, a.RemainingStock, b.RemainingStock)
		assert.Equal(t, a.UnitPrice, b.UnitPrice)
	}
}
