// Command stockbook manages a small shop's inventory, invoices, suppliers,
// and user accounts from the command line. All data lives in whole-file JSON
// stores under the configured data directory.
//
// Configuration comes from a YAML file (CONFIG_PATH, ./config.yaml, or the
// user config dir) overridden by environment variables. Run
// "stockbook --help" for the command tree.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/stockbook/internal/app"
	"github.com/heartmarshall/stockbook/internal/cli"
)

func main() {
	ctx := context.Background()

	application, err := app.New(ctx)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	if err := cli.New(application).RunContext(ctx, os.Args); err != nil {
		application.Log.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
