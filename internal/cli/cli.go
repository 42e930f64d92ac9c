// Package cli builds the stockbook command tree. Commands parse flags and
// arguments, call the services, and print results; every state change goes
// through the service layer.
package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/stockbook/internal/app"
	"github.com/heartmarshall/stockbook/pkg/ctxutil"
)

// New assembles the command-line application around the wired services.
func New(a *app.App) *cli.App {
	return &cli.App{
		Name:    "stockbook",
		Usage:   "inventory and invoice manager",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "actor",
				Usage: "name recorded in the activity log",
				Value: ctxutil.DefaultActor,
			},
		},
		Before: func(cCtx *cli.Context) error {
			cCtx.Context = ctxutil.WithActor(cCtx.Context, cCtx.String("actor"))
			return nil
		},
		Commands: []*cli.Command{
			itemCommand(a),
			invoiceCommand(a),
			exportCommand(a),
			previewCommand(a),
			statsCommand(a),
			prefsCommand(a),
			userCommand(a),
			supplierCommand(a),
			activityCommand(a),
		},
	}
}

// printRows renders rows as an aligned table.
func printRows(w io.Writer, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// argInt64 parses the first positional argument as a numeric id.
func argInt64(cCtx *cli.Context, name string) (int64, error) {
	arg := cCtx.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	v, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: not a number", name, arg)
	}
	return v, nil
}
