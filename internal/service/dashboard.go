package service

import (
	"context"
	"sort"

	"pos-tracker/internal/models"
	"pos-tracker/internal/util"
)

// DashboardMetrics derives the KPI set from the current catalog and
// ledger. Nothing is cached; every call recomputes from a consistent
// snapshot of both collections.
func (s *InventoryService) DashboardMetrics(ctx context.Context) models.DashboardMetrics {
	_, span := util.StartSpan(ctx, "InventoryService.DashboardMetrics")
	defer span.End()

	products, transactions := s.store.Snapshot()
	return computeMetrics(products, transactions)
}

func computeMetrics(products []models.Product, transactions []models.Transaction) models.DashboardMetrics {
	prices := make(map[int64]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	var itemsSold int
	var revenue float64
	for _, t := range transactions {
		if t.Action != models.ActionSold {
			continue
		}
		itemsSold += t.Quantity
		// Best-effort, current-price revenue: a sale of a product that has
		// since been deleted contributes nothing.
		if price, ok := prices[t.ProductID]; ok {
			revenue += price * float64(t.Quantity)
		}
	}

	return models.DashboardMetrics{
		TotalProducts:    len(products),
		LowStockCount:    countLowStock(products),
		ItemsSold:        itemsSold,
		EstimatedRevenue: revenue,
	}
}

func countLowStock(products []models.Product) int {
	var n int
	for _, p := range products {
		if p.Quantity < models.LowStockThreshold {
			n++
		}
	}
	return n
}

// RecentSales returns the n most recent Sold entries, newest first. Ties
// on timestamp keep ledger insertion order.
func (s *InventoryService) RecentSales(ctx context.Context, n int) []models.Transaction {
	transactions := s.store.Transactions()

	sales := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Action == models.ActionSold {
			sales = append(sales, t)
		}
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Timestamp.After(sales[j].Timestamp)
	})

	if n > 0 && len(sales) > n {
		sales = sales[:n]
	}
	return sales
}

// LedgerSummary counts ledger entries per action
func (s *InventoryService) LedgerSummary(ctx context.Context) models.LedgerSummary {
	transactions := s.store.Transactions()

	summary := models.LedgerSummary{TotalEntries: len(transactions)}
	for _, t := range transactions {
		switch t.Action {
		case models.ActionSold:
			summary.Sales++
		case models.ActionRestocked:
			summary.Restocks++
		}
	}
	return summary
}

// StockStatusOf reports the stock classification for a quantity on hand
func (s *InventoryService) StockStatusOf(quantity int) string {
	return models.StockStatusOf(quantity)
}
