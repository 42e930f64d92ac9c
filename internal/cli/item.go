package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/stockbook/internal/app"
	"github.com/heartmarshall/stockbook/internal/export"
	"github.com/heartmarshall/stockbook/internal/importer"
	inventorysvc "github.com/heartmarshall/stockbook/internal/service/inventory"
)

// parsePrice converts a price flag value; an unset flag means zero.
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("price %q: not a number", s)
	}
	return d, nil
}

func itemCommand(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "item",
		Usage: "manage inventory items",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "add a new item",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "item name", Required: true},
					&cli.Int64Flag{Name: "qty", Usage: "units on hand"},
					&cli.StringFlag{Name: "price", Usage: "unit price, e.g. 2.50"},
				},
				Action: func(cCtx *cli.Context) error {
					price, err := parsePrice(cCtx.String("price"))
					if err != nil {
						return err
					}
					item, err := a.Inventory.AddItem(cCtx.Context, inventorysvc.AddItemInput{
						Name:     cCtx.String("name"),
						Quantity: cCtx.Int64("qty"),
						Price:    price,
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "added item %d %q\n", item.ID, item.Name)
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "change name, quantity, or price of an item",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "new item name"},
					&cli.Int64Flag{Name: "qty", Usage: "new quantity"},
					&cli.StringFlag{Name: "price", Usage: "new unit price"},
				},
				Action: func(cCtx *cli.Context) error {
					id, err := argInt64(cCtx, "item id")
					if err != nil {
						return err
					}
					input := inventorysvc.UpdateItemInput{ID: id}
					if cCtx.IsSet("name") {
						name := cCtx.String("name")
						input.Name = &name
					}
					if cCtx.IsSet("qty") {
						qty := cCtx.Int64("qty")
						input.Quantity = &qty
					}
					if cCtx.IsSet("price") {
						price, err := parsePrice(cCtx.String("price"))
						if err != nil {
							return err
						}
						input.Price = &price
					}
					item, err := a.Inventory.UpdateItem(cCtx.Context, input)
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "updated item %d %q\n", item.ID, item.Name)
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "delete an item from the inventory",
				ArgsUsage: "<id>",
				Action: func(cCtx *cli.Context) error {
					id, err := argInt64(cCtx, "item id")
					if err != nil {
						return err
					}
					if err := a.Inventory.RemoveItem(cCtx.Context, id); err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "removed item %d\n", id)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "list all items",
				Action: func(cCtx *cli.Context) error {
					items := a.Inventory.ListItems(cCtx.Context)
					return printRows(cCtx.App.Writer, export.ItemRows(items))
				},
			},
			{
				Name:      "search",
				Usage:     "find items by name substring",
				ArgsUsage: "<query>",
				Action: func(cCtx *cli.Context) error {
					query := strings.Join(cCtx.Args().Slice(), " ")
					items := a.Inventory.SearchItems(cCtx.Context, query)
					return printRows(cCtx.App.Writer, export.ItemRows(items))
				},
			},
			{
				Name:      "import",
				Usage:     "add items in bulk from a CSV file",
				ArgsUsage: "<file.csv>",
				Action: func(cCtx *cli.Context) error {
					path := cCtx.Args().First()
					if path == "" {
						return errors.New("missing file argument")
					}

					f, err := os.Open(path)
					if err != nil {
						return fmt.Errorf("open import file: %w", err)
					}
					defer f.Close()

					records, err := importer.ParseItems(f)
					if err != nil {
						return fmt.Errorf("parse %s: %w", path, err)
					}
					if len(records) == 0 {
						return fmt.Errorf("no item rows in %s", path)
					}

					inputs := make([]inventorysvc.AddItemInput, 0, len(records))
					for _, rec := range records {
						inputs = append(inputs, inventorysvc.AddItemInput{
							Name:     rec.Name,
							Quantity: rec.Quantity,
							Price:    rec.Price,
						})
					}

					items, err := a.Inventory.ImportItems(cCtx.Context, inputs)
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "imported %d items from %s\n", len(items), path)
					return nil
				},
			},
		},
	}
}
