package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/heartmarshall/stockbook/internal/app"
	"github.com/heartmarshall/stockbook/internal/domain"
	authsvc "github.com/heartmarshall/stockbook/internal/service/auth"
)

func userCommand(a *app.App) *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "manage user accounts",
		Subcommands: []*cli.Command{
			{
				Name:  "add",
				Usage: "create a user account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "role", Usage: "ADMIN or VIEWER", Value: string(domain.RoleViewer)},
				},
				Action: func(cCtx *cli.Context) error {
					user, err := a.Auth.CreateUser(cCtx.Context, authsvc.CreateUserInput{
						Username: cCtx.String("username"),
						Password: cCtx.String("password"),
						Role:     domain.Role(strings.ToUpper(cCtx.String("role"))),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "created user %q (%s)\n", user.Username, user.Role)
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "delete a user account",
				ArgsUsage: "<username>",
				Action: func(cCtx *cli.Context) error {
					username := cCtx.Args().First()
					if username == "" {
						return fmt.Errorf("missing username argument")
					}
					if err := a.Auth.DeleteUser(cCtx.Context, username); err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "removed user %q\n", username)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "list user accounts",
				Action: func(cCtx *cli.Context) error {
					users := a.Auth.ListUsers(cCtx.Context)
					rows := [][]string{{"Username", "Role", "Created"}}
					for i := range users {
						u := &users[i]
						rows = append(rows, []string{
							u.Username,
							string(u.Role),
							u.CreatedAt.Format("2006-01-02"),
						})
					}
					return printRows(cCtx.App.Writer, rows)
				},
			},
			{
				Name:  "passwd",
				Usage: "change a user's password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "old", Usage: "current password", Required: true},
					&cli.StringFlag{Name: "new", Usage: "new password", Required: true},
				},
				Action: func(cCtx *cli.Context) error {
					err := a.Auth.ChangePassword(cCtx.Context, authsvc.ChangePasswordInput{
						Username:    cCtx.String("username"),
						OldPassword: cCtx.String("old"),
						NewPassword: cCtx.String("new"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintln(cCtx.App.Writer, "password changed")
					return nil
				},
			},
			{
				Name:  "login",
				Usage: "verify credentials and record the login",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(cCtx *cli.Context) error {
					user, err := a.Auth.Login(cCtx.Context, authsvc.LoginInput{
						Username: cCtx.String("username"),
						Password: cCtx.String("password"),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(cCtx.App.Writer, "logged in as %q (%s)\n", user.Username, user.Role)
					return nil
				},
			},
		},
	}
}
