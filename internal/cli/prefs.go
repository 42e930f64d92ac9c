package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/stockbook/internal/app"
	prefssvc "github.com/heartmarshall/stockbook/internal/service/prefs"
)

func prefsCommand(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "prefs",
		Usage: "show and change preferences",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Usage: "show current preferences",
				Action: func(cCtx *cli.Context) error {
					p := a.Prefs.GetPreferences(cCtx.Context)
					w := cCtx.App.Writer
					fmt.Fprintf(w, "language: %s\n", p.Language)
					fmt.Fprintf(w, "theme:    %s\n", p.Theme)
					fmt.Fprintf(w, "template: %s\n", p.TemplatePath)
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "change one or more preferences",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "language", Usage: "interface language code"},
					&cli.StringFlag{Name: "theme", Usage: "light or dark"},
					&cli.StringFlag{Name: "template", Usage: "invoice template path, empty to clear"},
				},
				Action: func(cCtx *cli.Context) error {
					var input prefssvc.UpdatePrefsInput
					if cCtx.IsSet("language") {
						language := cCtx.String("language")
						input.Language = &language
					}
					if cCtx.IsSet("theme") {
						theme := cCtx.String("theme")
						input.Theme = &theme
					}
					if cCtx.IsSet("template") {
						template := cCtx.String("template")
						input.TemplatePath = &template
					}

					p, err := a.Prefs.UpdatePreferences(cCtx.Context, input)
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "preferences updated: language %s, theme %s\n",
						p.Language, p.Theme)
					return nil
				},
			},
		},
	}
}
