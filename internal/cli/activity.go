package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/stockbook/internal/app"
)

func activityCommand(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "activity",
		Usage: "show the activity log, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Usage: "max records to show, 0 for all", Value: 20},
		},
		Action: func(cCtx *cli.Context) error {
			records := a.Activity.ListActivity(cCtx.Context, cCtx.Int("limit"))
			rows := [][]string{{"Time", "Actor", "Action", "Entity", "Detail"}}
			for i := range records {
				r := &records[i]
				rows = append(rows, []string{
					r.CreatedAt.Format("2006-01-02 15:04"),
					r.Actor,
					string(r.Action),
					string(r.EntityType),
					r.Detail,
				})
			}
			return printRows(cCtx.App.Writer, rows)
		},
	}
}
