package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/stockbook/internal/app"
	"github.com/heartmarshall/stockbook/internal/domain"
	"github.com/heartmarshall/stockbook/internal/export"
	invoicingsvc "github.com/heartmarshall/stockbook/internal/service/invoicing"
)

// parseLine converts an ITEM:QTY flag value into a line request.
func parseLine(s string) (invoicingsvc.LineRequest, error) {
	idStr, qtyStr, ok := strings.Cut(s, ":")
	if !ok {
		return invoicingsvc.LineRequest{}, fmt.Errorf("line %q: want ITEM:QTY", s)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
	if err != nil {
		return invoicingsvc.LineRequest{}, fmt.Errorf("line %q: item id is not a number", s)
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(qtyStr), 10, 64)
	if err != nil {
		return invoicingsvc.LineRequest{}, fmt.Errorf("line %q: quantity is not a number", s)
	}
	return invoicingsvc.LineRequest{ItemID: id, Quantity: qty}, nil
}

func invoiceCommand(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "invoice",
		Usage: "create and inspect invoices",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "create an invoice, deducting sold units from stock",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "supplier", Usage: "supplier name", Required: true},
					&cli.StringSliceFlag{
						Name:  "line",
						Usage: "invoice line as ITEM:QTY, repeatable",
					},
				},
				Action: func(cCtx *cli.Context) error {
					input := invoicingsvc.CreateInvoiceInput{
						Supplier: cCtx.String("supplier"),
					}
					for _, raw := range cCtx.StringSlice("line") {
						line, err := parseLine(raw)
						if err != nil {
							return err
						}
						input.Lines = append(input.Lines, line)
					}

					inv, err := a.Invoicing.CreateInvoice(cCtx.Context, input)
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "created invoice %d for %q, total %s\n",
						inv.Number, inv.Supplier, inv.Total.StringFixed(2))
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "list invoices, optionally filtered",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "supplier", Usage: "exact supplier name (case-insensitive)"},
					&cli.StringFlag{Name: "from", Usage: "earliest date, YYYY-MM-DD"},
					&cli.StringFlag{Name: "to", Usage: "latest date, YYYY-MM-DD (inclusive)"},
				},
				Action: func(cCtx *cli.Context) error {
					var filter domain.InvoiceFilter
					if cCtx.IsSet("supplier") {
						supplier := cCtx.String("supplier")
						filter.Supplier = &supplier
					}
					if cCtx.IsSet("from") {
						from, err := time.Parse("2006-01-02", cCtx.String("from"))
						if err != nil {
							return fmt.Errorf("from %q: want YYYY-MM-DD", cCtx.String("from"))
						}
						filter.From = &from
					}
					if cCtx.IsSet("to") {
						to, err := time.Parse("2006-01-02", cCtx.String("to"))
						if err != nil {
							return fmt.Errorf("to %q: want YYYY-MM-DD", cCtx.String("to"))
						}
						// Inclusive of the named day.
						to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
						filter.To = &to
					}

					invoices := a.Invoicing.ListInvoices(cCtx.Context, filter)
					return printRows(cCtx.App.Writer, export.InvoiceRows(invoices))
				},
			},
			{
				Name:      "show",
				Usage:     "show one invoice with its frozen lines",
				ArgsUsage: "<number>",
				Action: func(cCtx *cli.Context) error {
					number, err := argInt64(cCtx, "invoice number")
					if err != nil {
						return err
					}
					inv, err := a.Invoicing.GetInvoice(cCtx.Context, number)
					if err != nil {
						return err
					}

					w := cCtx.App.Writer
					fmt.Fprintf(w, "Invoice %d\n", inv.Number)
					fmt.Fprintf(w, "Supplier: %s\n", inv.Supplier)
					fmt.Fprintf(w, "Date:     %s\n\n", inv.CreatedAt.Format("2006-01-02"))
					if err := printRows(w, export.InvoiceLineRows(inv)); err != nil {
						return err
					}
					fmt.Fprintf(w, "\nTotal: %s\n", inv.Total.StringFixed(2))
					return nil
				},
			},
		},
	}
}
