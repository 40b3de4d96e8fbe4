package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "Total number of products added to the catalog",
	})

	ProductsUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "Total number of product updates",
	})

	ProductsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "Total number of products removed from the catalog",
	})

	SalesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sales_total",
		Help: "Total number of recorded sales",
	})

	SalesClampedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sales_clamped_total",
		Help: "Total number of sales clamped to the stock on hand",
	})

	ItemsSoldTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "items_sold_total",
		Help: "Total quantity of items requested across sales",
	})

	RestocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restocks_total",
		Help: "Total number of recorded restocks",
	})

	OperationsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_operations_failed_total",
		Help: "Total number of failed inventory operations",
	}, []string{"operation", "reason"})

	LowStockProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "low_stock_products",
		Help: "Current number of products below the low-stock threshold",
	})

	SnapshotSaveLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "snapshot_save_latency_seconds",
		Help:    "Latency of persistence snapshot writes",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "snapshot_failures_total",
		Help: "Total number of failed persistence snapshot writes",
	})
)
