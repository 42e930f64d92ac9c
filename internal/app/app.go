package app

import (
	"context"
	"fmt"
	"log/slog"

	activityrepo "github.com/heartmarshall/stockbook/internal/adapter/jsonfile/activity"
	inventoryrepo "github.com/heartmarshall/stockbook/internal/adapter/jsonfile/inventory"
	invoicerepo "github.com/heartmarshall/stockbook/internal/adapter/jsonfile/invoice"
	prefsrepo "github.com/heartmarshall/stockbook/internal/adapter/jsonfile/prefs"
	supplierrepo "github.com/heartmarshall/stockbook/internal/adapter/jsonfile/supplier"
	userrepo "github.com/heartmarshall/stockbook/internal/adapter/jsonfile/user"
	"github.com/heartmarshall/stockbook/internal/config"
	activitysvc "github.com/heartmarshall/stockbook/internal/service/activity"
	authsvc "github.com/heartmarshall/stockbook/internal/service/auth"
	inventorysvc "github.com/heartmarshall/stockbook/internal/service/inventory"
	invoicingsvc "github.com/heartmarshall/stockbook/internal/service/invoicing"
	prefssvc "github.com/heartmarshall/stockbook/internal/service/prefs"
	statssvc "github.com/heartmarshall/stockbook/internal/service/stats"
	suppliersvc "github.com/heartmarshall/stockbook/internal/service/supplier"
)

// App holds the wired application: configuration, logger, and services.
// It is built once at startup and handed to the CLI commands.
type App struct {
	Cfg *config.Config
	Log *slog.Logger

	Inventory *inventorysvc.Service
	Invoicing *invoicingsvc.Service
	Auth      *authsvc.Service
	Stats     *statssvc.Service
	Prefs     *prefssvc.Service
	Suppliers *suppliersvc.Service
	Activity  *activitysvc.Service
}

// New loads configuration, opens every store, and wires the services.
// A corrupt or unreadable store file is reported as a warning and replaced
// by an empty collection; only configuration and seeding errors block
// startup.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Debug("starting",
		slog.String("version", BuildVersion()),
		slog.String("data_dir", cfg.Storage.Dir),
	)

	openWarn := func(store string, err error) {
		if err != nil {
			logger.Warn("store unreadable, starting empty",
				slog.String("store", store),
				slog.String("error", err.Error()),
			)
		}
	}

	// 1. Stores. Open always returns a usable store alongside any error.
	items, err := inventoryrepo.Open(cfg.Storage.InventoryPath())
	openWarn("inventory", err)

	invoices, err := invoicerepo.Open(cfg.Storage.InvoicesPath())
	openWarn("invoices", err)

	suppliers, err := supplierrepo.Open(cfg.Storage.SuppliersPath())
	openWarn("suppliers", err)

	users, err := userrepo.Open(cfg.Storage.UsersPath())
	openWarn("users", err)

	records, err := activityrepo.Open(cfg.Storage.ActivityPath())
	openWarn("activity", err)

	preferences, err := prefsrepo.Open(cfg.Storage.PrefsPath())
	openWarn("prefs", err)

	// 2. Services.
	a := &App{
		Cfg:       cfg,
		Log:       logger,
		Inventory: inventorysvc.NewService(logger, items, records),
		Invoicing: invoicingsvc.NewService(logger, items, invoices, suppliers, records),
		Auth:      authsvc.NewService(logger, users, records, cfg.Auth),
		Stats:     statssvc.NewService(logger, items, invoices, cfg.Stats),
		Prefs:     prefssvc.NewService(logger, preferences, records),
		Suppliers: suppliersvc.NewService(logger, suppliers, records),
		Activity:  activitysvc.NewService(logger, records),
	}

	// 3. First-run seeding.
	if err := a.Auth.EnsureDefaultAdmin(ctx); err != nil {
		return nil, fmt.Errorf("seed default admin: %w", err)
	}

	return a, nil
}
