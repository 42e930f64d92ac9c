package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/stockbook/internal/app"
	"github.com/heartmarshall/stockbook/internal/domain"
	"github.com/heartmarshall/stockbook/internal/export"
)

// resolveOut returns the output path, defaulting to defaultName inside the
// configured export directory, and creates the parent directory.
func resolveOut(cCtx *cli.Context, dir, defaultName string) (string, error) {
	out := cCtx.String("out")
	if out == "" {
		out = filepath.Join(dir, defaultName)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	return out, nil
}

// writeFile creates path and streams the render into it.
func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var formatFlag = &cli.StringFlag{
	Name:  "format",
	Usage: "output format: csv, xlsx, or pdf",
	Value: "csv",
}

var outFlag = &cli.StringFlag{
	Name:  "out",
	Usage: "output file path (default: under the configured export dir)",
}

func exportCommand(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write inventory and invoice reports to files",
		Subcommands: []*cli.Command{
			{
				Name:  "inventory",
				Usage: "export the item list",
				Flags: []cli.Flag{formatFlag, outFlag},
				Action: func(cCtx *cli.Context) error {
					items := a.Inventory.ListItems(cCtx.Context)
					format := cCtx.String("format")

					out, err := resolveOut(cCtx, a.Cfg.Export.Dir, "inventory."+format)
					if err != nil {
						return err
					}

					switch format {
					case "csv":
						err = writeFile(out, func(w io.Writer) error {
							return export.WriteCSV(w, export.ItemRows(items))
						})
					case "xlsx":
						err = export.WriteXLSX(out, a.Cfg.Export.SheetName, export.ItemRows(items))
					case "pdf":
						err = writeFile(out, func(w io.Writer) error {
							return export.InventoryPDF(w, items, a.Cfg.Export.CurrencySymbol)
						})
					default:
						return fmt.Errorf("format %q: want csv, xlsx, or pdf", format)
					}
					if err != nil {
						return err
					}

					a.Activity.RecordExport(cCtx.Context, domain.EntityTypeItem,
						fmt.Sprintf("inventory to %q", out))
					fmt.Fprintf(cCtx.App.Writer, "exported %d items to %s\n", len(items), out)
					return nil
				},
			},
			{
				Name:  "invoices",
				Usage: "export the invoice history",
				Flags: []cli.Flag{formatFlag, outFlag},
				Action: func(cCtx *cli.Context) error {
					invoices := a.Invoicing.ListInvoices(cCtx.Context, domain.InvoiceFilter{})
					format := cCtx.String("format")

					out, err := resolveOut(cCtx, a.Cfg.Export.Dir, "invoices."+format)
					if err != nil {
						return err
					}

					switch format {
					case "csv":
						err = writeFile(out, func(w io.Writer) error {
							return export.WriteCSV(w, export.InvoiceRows(invoices))
						})
					case "xlsx":
						err = export.WriteXLSX(out, a.Cfg.Export.SheetName, export.InvoiceRows(invoices))
					case "pdf":
						err = writeFile(out, func(w io.Writer) error {
							return export.InvoicePDF(w, invoices, a.Cfg.Export.CurrencySymbol)
						})
					default:
						return fmt.Errorf("format %q: want csv, xlsx, or pdf", format)
					}
					if err != nil {
						return err
					}

					a.Activity.RecordExport(cCtx.Context, domain.EntityTypeInvoice,
						fmt.Sprintf("invoices to %q", out))
					fmt.Fprintf(cCtx.App.Writer, "exported %d invoices to %s\n", len(invoices), out)
					return nil
				},
			},
			{
				Name:  "report",
				Usage: "export the combined inventory and invoice report as PDF",
				Flags: []cli.Flag{outFlag},
				Action: func(cCtx *cli.Context) error {
					items := a.Inventory.ListItems(cCtx.Context)
					invoices := a.Invoicing.ListInvoices(cCtx.Context, domain.InvoiceFilter{})

					out, err := resolveOut(cCtx, a.Cfg.Export.Dir, "full_report.pdf")
					if err != nil {
						return err
					}

					err = writeFile(out, func(w io.Writer) error {
						return export.ReportPDF(w, items, invoices, a.Cfg.Export.CurrencySymbol)
					})
					if err != nil {
						return err
					}

					a.Activity.RecordExport(cCtx.Context, domain.EntityTypeItem,
						fmt.Sprintf("full report to %q", out))
					fmt.Fprintf(cCtx.App.Writer, "exported full report to %s\n", out)
					return nil
				},
			},
		},
	}
}

func previewCommand(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "print the inventory as a fixed-width report",
		Action: func(cCtx *cli.Context) error {
			items := a.Inventory.ListItems(cCtx.Context)
			fmt.Fprint(cCtx.App.Writer, export.PrintPreview(items))
			return nil
		},
	}
}
