package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/stockbook/internal/app"
	"github.com/heartmarshall/stockbook/internal/export"
)

func statsCommand(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "show the dashboard summary",
		Action: func(cCtx *cli.Context) error {
			d := a.Stats.GetDashboard(cCtx.Context)
			w := cCtx.App.Writer
			cur := a.Cfg.Export.CurrencySymbol

			fmt.Fprintf(w, "Items:         %d\n", d.ItemCount)
			fmt.Fprintf(w, "Units on hand: %d\n", d.TotalUnits)
			fmt.Fprintf(w, "Stock value:   %s%s\n", cur, d.StockValue.StringFixed(2))
			fmt.Fprintf(w, "Low stock:     %d\n", d.LowStockCount)
			fmt.Fprintf(w, "Invoices:      %d\n", d.InvoiceCount)
			fmt.Fprintf(w, "Revenue:       %s%s\n", cur, d.Revenue.StringFixed(2))
			fmt.Fprintf(w, "Suppliers:     %d\n", d.SupplierCount)

			if len(d.RevenueByMonth) > 0 {
				fmt.Fprintf(w, "\nRevenue by month:\n")
				for _, m := range d.RevenueByMonth {
					fmt.Fprintf(w, "  %s  %s%s\n", m.Month, cur, m.Revenue.StringFixed(2))
				}
			}

			if len(d.RecentInvoices) > 0 {
				fmt.Fprintf(w, "\nRecent invoices:\n")
				if err := printRows(w, export.InvoiceRows(d.RecentInvoices)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
