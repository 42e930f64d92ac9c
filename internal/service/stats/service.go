package stats

import (
	"iter"
	"log/slog"

	"github.com/heartmarshall/stockbook/internal/config"
	"github.com/heartmarshall/stockbook/internal/domain"
)

// itemSource defines the inventory view needed by the stats service.
type itemSource interface {
	All() iter.Seq[domain.Item]
	Len() int
}

// invoiceSource defines the history view needed by the stats service.
type invoiceSource interface {
	All() iter.Seq[domain.Invoice]
	Len() int
}

// Service computes read-only aggregates over the stores.
type Service struct {
	items    itemSource
	invoices invoiceSource
	cfg      config.StatsConfig
	log      *slog.Logger
}

// NewService creates a new stats service.
func NewService(log *slog.Logger, items itemSource, invoices invoiceSource, cfg config.StatsConfig) *Service {
	return &Service{
		items:    items,
		invoices: invoices,
		cfg:      cfg,
		log:      log.With("service", "stats"),
	}
}
