package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/stockbook/internal/app"
	suppliersvc "github.com/heartmarshall/stockbook/internal/service/supplier"
)

func supplierCommand(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "supplier",
		Usage: "manage the supplier registry",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "add or update a supplier",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "contact", Usage: "free-form contact info"},
				},
				Action: func(cCtx *cli.Context) error {
					supplier, err := a.Suppliers.AddSupplier(cCtx.Context, suppliersvc.AddSupplierInput{
						Name:    cCtx.String("name"),
						Contact: cCtx.String("contact"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "added supplier %q\n", supplier.Name)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "list suppliers",
				Action: func(cCtx *cli.Context) error {
					suppliers := a.Suppliers.ListSuppliers(cCtx.Context)
					rows := [][]string{{"Name", "Contact", "Added"}}
					for i := range suppliers {
						s := &suppliers[i]
						rows = append(rows, []string{
							s.Name,
							s.Contact,
							s.CreatedAt.Format("2006-01-02"),
						})
					}
					return printRows(cCtx.App.Writer, rows)
				},
			},
			{
				Name:      "remove",
				Usage:     "delete a supplier from the registry",
				ArgsUsage: "<name>",
				Action: func(cCtx *cli.Context) error {
					name := strings.Join(cCtx.Args().Slice(), " ")
					if err := a.Suppliers.RemoveSupplier(cCtx.Context, name); err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "removed supplier %q\n", name)
					return nil
				},
			},
		},
	}
}
