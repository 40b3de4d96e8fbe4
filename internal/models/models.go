package models

import "time"

// Product represents a product in the catalog
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// ProductDraft carries the caller-supplied fields of a product.
// The store assigns the ID.
type ProductDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Ledger actions
const (
	ActionSold      = "Sold"
	ActionRestocked = "Restocked"
)

// Transaction is an immutable ledger entry recording one stock-affecting
// action. ProductName and UnitPrice are snapshots taken at append time and
// survive later renames, price changes, and deletion of the product.
type Transaction struct {
	ID             string    `json:"id"`
	ProductID      int64     `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Action         string    `json:"action"`
	Quantity       int       `json:"quantity"`
	RemainingStock int       `json:"remaining_stock"`
	UnitPrice      float64   `json:"unit_price"`
	Timestamp      time.Time `json:"timestamp"`
}

// Stock status levels, ordered from most to least urgent
const (
	StockCritical = "Critical"
	StockLow      = "Low"
	StockMedium   = "Medium"
	StockHealthy  = "Healthy"
)

// Default classification thresholds
const (
	CriticalStockThreshold = 5
	LowStockThreshold      = 10
	MediumStockThreshold   = 20
)

// StockStatusOf classifies a quantity on hand. Thresholds are checked in
// order; the first match wins.
func StockStatusOf(quantity int) string {
	switch {
	case quantity < CriticalStockThreshold:
		return StockCritical
	case quantity < LowStockThreshold:
		return StockLow
	case quantity < MediumStockThreshold:
		return StockMedium
	default:
		return StockHealthy
	}
}

// DashboardMetrics holds the derived KPIs shown on the dashboard
type DashboardMetrics struct {
	TotalProducts    int     `json:"total_products"`
	LowStockCount    int     `json:"low_stock_count"`
	ItemsSold        int     `json:"items_sold"`
	EstimatedRevenue float64 `json:"estimated_revenue"`
}

// LedgerSummary holds per-action counts over the whole ledger
type LedgerSummary struct {
	TotalEntries int `json:"total_entries"`
	Sales        int `json:"sales"`
	Restocks     int `json:"restocks"`
}
