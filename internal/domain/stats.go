package domain

import "github.com/shopspring/decimal"

// Dashboard aggregates inventory and invoice figures for the stats view.
type Dashboard struct {
	ItemCount      int
	TotalUnits     int64
	StockValue     decimal.Decimal
	LowStockCount  int
	InvoiceCount   int
	Revenue        decimal.Decimal
	SupplierCount  int
	RevenueByMonth []MonthRevenue
	RecentInvoices []Invoice
}

// MonthRevenue is one bucket of the revenue-per-month chart feed.
// Month uses the "2006-01" layout.
type MonthRevenue struct {
	Month   string
	Revenue decimal.Decimal
}
