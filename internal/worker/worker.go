package worker

import (
	"context"

	"pos-tracker/internal/models"
	"pos-tracker/internal/util"

	"go.uber.org/zap"
)

// AlertWorker watches appended ledger entries and raises structured
// low-stock warnings when a sale drains a product below the configured
// thresholds.
type AlertWorker struct {
	entries           <-chan models.Transaction
	lowThreshold      int
	criticalThreshold int
	logger            *zap.Logger
	done              chan struct{}
}

// NewAlertWorker creates an alert worker reading from the given channel
func NewAlertWorker(entries <-chan models.Transaction, lowThreshold, criticalThreshold int) *AlertWorker {
	return &AlertWorker{
		entries:           entries,
		lowThreshold:      lowThreshold,
		criticalThreshold: criticalThreshold,
		logger:            util.GetLogger(),
		done:              make(chan struct{}),
	}
}

// Start consumes entries until the context is cancelled or the channel is
// closed. It is meant to run in its own goroutine.
func (w *AlertWorker) Start(ctx context.Context) error {
	defer close(w.done)
	w.logger.Info("Starting alert worker",
		zap.Int("low_threshold", w.lowThreshold),
		zap.Int("critical_threshold", w.criticalThreshold))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Alert worker stopping")
			return ctx.Err()
		case entry, ok := <-w.entries:
			if !ok {
				return nil
			}
			w.handle(entry)
		}
	}
}

// Done is closed once the worker has fully stopped
func (w *AlertWorker) Done() <-chan struct{} {
	return w.done
}

func (w *AlertWorker) handle(entry models.Transaction) {
	if entry.Action != models.ActionSold {
		return
	}

	switch {
	case entry.RemainingStock < w.criticalThreshold:
		w.logger.Warn("Stock critical",
			zap.Int64("product_id", entry.ProductID),
			zap.String("product", entry.ProductName),
			zap.Int("remaining", entry.RemainingStock))
	case entry.RemainingStock < w.lowThreshold:
		w.logger.Warn("Stock low",
			zap.Int64("product_id", entry.ProductID),
			zap.String("product", entry.ProductName),
			zap.Int("remaining", entry.RemainingStock))
	}
}
