package stats

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stockbook/internal/domain"
)

// recentInvoiceCount caps the dashboard's recent-invoices list.
const recentInvoiceCount = 5

// GetDashboard aggregates inventory and invoice figures in one pass over
// each store. An item counts as low-stock when its quantity is at or below
// the configured threshold. Suppliers are counted distinct by normalized
// name across the whole history.
func (s *Service) GetDashboard(ctx context.Context) domain.Dashboard {
	d := domain.Dashboard{
		ItemCount:    s.items.Len(),
		InvoiceCount: s.invoices.Len(),
		StockValue:   decimal.Zero,
		Revenue:      decimal.Zero,
	}

	for item := range s.items.All() {
		d.TotalUnits += item.Quantity
		d.StockValue = d.StockValue.Add(item.StockValue())
		if item.Quantity <= s.cfg.LowStockThreshold {
			d.LowStockCount++
		}
	}

	suppliers := make(map[string]struct{})
	monthly := make(map[string]decimal.Decimal)
	var all []domain.Invoice
	for inv := range s.invoices.All() {
		d.Revenue = d.Revenue.Add(inv.Total)
		suppliers[domain.NormalizeName(inv.Supplier)] = struct{}{}
		month := inv.CreatedAt.Format("2006-01")
		monthly[month] = monthly[month].Add(inv.Total)
		all = append(all, inv)
	}
	d.SupplierCount = len(suppliers)

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	slices.Sort(months)
	d.RevenueByMonth = make([]domain.MonthRevenue, 0, len(months))
	for _, m := range months {
		d.RevenueByMonth = append(d.RevenueByMonth, domain.MonthRevenue{Month: m, Revenue: monthly[m]})
	}

	// History is creation-ordered; the dashboard shows the tail, newest first.
	n := min(recentInvoiceCount, len(all))
	d.RecentInvoices = make([]domain.Invoice, 0, n)
	for i := len(all) - 1; i >= len(all)-n; i-- {
		d.RecentInvoices = append(d.RecentInvoices, all[i])
	}

	s.log.InfoContext(ctx, "dashboard computed",
		slog.Int("items", d.ItemCount),
		slog.Int("invoices", d.InvoiceCount),
		slog.Int("low_stock", d.LowStockCount),
	)

	return d
}
