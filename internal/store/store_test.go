package store

import (
	"testing"

	"pos-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProduct(t *testing.T) {
	s := NewStore()

	product, err := s.AddProduct(models.ProductDraft{
		Name:     "Wings",
		Category: "Food",
		Price:    50,
		Quantity: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
	assert.Equal(t, 20, product.Quantity)

	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Wings", products[0].Name)
}

func TestAddProductValidation(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name  string
		draft models.ProductDraft
	}{
		{"empty name", models.ProductDraft{Name: "  ", Price: 10, Quantity: 1}},
		{"negative price", models.ProductDraft{Name: "Cola", Price: -1, Quantity: 1}},
		{"negative quantity", models.ProductDraft{Name: "Cola", Price: 10, Quantity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddProduct(tt.draft)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}

	assert.Empty(t, s.Products(), "failed adds must not grow the catalog")
}

func TestProductIDsMonotonic(t *testing.T) {
	s := NewStore()

	for i := 0; i < 5; i++ {
		_, err := s.AddProduct(models.ProductDraft{Name: "P", Price: 1, Quantity: 1})
		require.NoError(t, err)
	}

	products := s.Products()
	for i := 1; i < len(products); i++ {
		assert.Greater(t, products[i].ID, products[i-1].ID)
	}
}

func TestUpdateProduct(t *testing.T) {
	s := NewStore()
	created, err := s.AddProduct(models.ProductDraft{Name: "Wings", Category: "Food", Price: 50, Quantity: 20})
	require.NoError(t, err)

	updated, err := s.UpdateProduct(created.ID, models.ProductDraft{
		Name:     "Buffalo Wings",
		Category: "Food",
		Price:    55,
		Quantity: 18,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "id is immutable")
	assert.Equal(t, "Buffalo Wings", updated.Name)
	assert.Equal(t, 55.0, updated.Price)

	_, err = s.UpdateProduct(999, models.ProductDraft{Name: "X", Price: 1, Quantity: 1})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRemoveProduct(t *testing.T) {
	s := NewStore()
	first, _ := s.AddProduct(models.ProductDraft{Name: "Wings", Price: 50, Quantity: 20})
	second, _ := s.AddProduct(models.ProductDraft{Name: "Cola", Price: 15, Quantity: 30})

	require.NoError(t, s.RemoveProduct(first.ID))
	assert.ErrorIs(t, s.RemoveProduct(first.ID), models.ErrNotFound)

	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, second.ID, products[0].ID)

	// index must stay consistent after removal
	got, err := s.GetProduct(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cola", got.Name)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	s := NewStore()
	p, _ := s.AddProduct(models.ProductDraft{Name: "Wings", Price: 50, Quantity: 20})
	_, _, err := s.Sell(p.ID, 5, OversellClamp)
	require.NoError(t, err)

	products, transactions := s.Snapshot()

	restored := NewStore()
	restored.Restore(products, transactions)

	gotProducts, gotTransactions := restored.Snapshot()
	assert.Equal(t, products, gotProducts)
	assert.Equal(t, transactions, gotTransactions)

	// next id continues past the restored maximum
	added, err := restored.AddProduct(models.ProductDraft{Name: "Cola", Price: 15, Quantity: 30})
	require.NoError(t, err)
	assert.Equal(t, p.ID+1, added.ID)
}

func TestRestoreAssignsMissingIDs(t *testing.T) {
	s := NewStore()
	s.Restore([]models.Product{
		{ID: 7, Name: "Wings", Price: 50, Quantity: 20},
		{Name: "Seeded", Price: 10, Quantity: 5},
	}, nil)

	products := s.Products()
	require.Len(t, products, 2)
	assert.Equal(t, int64(7), products[0].ID)
	assert.Equal(t, int64(8), products[1].ID, "seeded product gets the next free id")
}

func TestSortProducts(t *testing.T) {
	products := []models.Product{
		{Name: "cola", Price: 15, Quantity: 30},
		{Name: "Bread", Price: 8, Quantity: 2},
		{Name: "Wings", Price: 50, Quantity: 20},
	}

	byName := append([]models.Product(nil), products...)
	SortProducts(byName, SortByName)
	assert.Equal(t, []string{"Bread", "cola", "Wings"},
		[]string{byName[0].Name, byName[1].Name, byName[2].Name})

	byPrice := append([]models.Product(nil), products...)
	SortProducts(byPrice, SortByPrice)
	assert.Equal(t, 8.0, byPrice[0].Price)

	byStock := append([]models.Product(nil), products...)
	SortProducts(byStock, SortByStock)
	assert.Equal(t, 2, byStock[0].Quantity)
}

func TestParseOversellPolicy(t *testing.T) {
	assert.Equal(t, OversellReject, ParseOversellPolicy("reject"))
	assert.Equal(t, OversellReject, ParseOversellPolicy("REJECT"))
	assert.Equal(t, OversellClamp, ParseOversellPolicy("clamp"))
	assert.Equal(t, OversellClamp, ParseOversellPolicy(""))
	assert.Equal(t, OversellClamp, ParseOversellPolicy("nonsense"))
}
