package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/getmockd/fakeapi/pkg/records"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Register, authenticate and manage users",
	}
	cmd.AddCommand(
		newUsersRegisterCmd(a),
		newUsersLoginCmd(a),
		newUsersListCmd(a),
		newUsersGetCmd(a),
		newUsersUpdateCmd(a),
		newUsersDeleteCmd(a),
	)
	return cmd
}

// promptPassword asks for a password interactively.
func promptPassword(title string) (string, error) {
	var password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return password, nil
}

func newUsersRegisterCmd(a *app) *cobra.Command {
	var u records.User
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Example: `  fakeapi users register --username bob --password s3cret --first-name Bob
  fakeapi users register --username amy   # prompts for the password`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if u.Username == "" {
				return errors.New("--username is required")
			}
			if !cmd.Flags().Changed("password") {
				pw, err := promptPassword("Password for " + u.Username)
				if err != nil {
					return err
				}
				u.Password = pw
			}
			if err := a.users.Register(cmd.Context(), u); err != nil {
				return err
			}
			return a.done(cmd, "Registered user %s", u.Username)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&u.Username, "username", "u", "", "Username")
	f.StringVarP(&u.Password, "password", "p", "", "Password (prompted when omitted)")
	f.StringVar(&u.FirstName, "first-name", "", "First name")
	f.StringVar(&u.LastName, "last-name", "", "Last name")
	return cmd
}

func newUsersLoginCmd(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print the issued token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("password") {
				pw, err := promptPassword("Password for " + username)
				if err != nil {
					return err
				}
				password = pw
			}
			sess, err := a.users.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			return a.emit(cmd, sess, func(w io.Writer) {
				fmt.Fprintf(w, "Logged in as %s (id %d)\n", sess.User.Username, sess.User.ID)
				fmt.Fprintf(w, "Token: %s\n", sess.Token)
			})
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

func newUsersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.authenticate()
			users, err := a.users.List(cmd.Context())
			if err != nil {
				return err
			}
			return a.emit(cmd, users, func(w io.Writer) { printUsers(w, users) })
		},
	}
}

func newUsersGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a.authenticate()
			u, err := a.users.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if u == nil {
				return fmt.Errorf("user %d not found", id)
			}
			return a.emit(cmd, u, func(w io.Writer) { printUsers(w, []records.PublicUser{*u}) })
		},
	}
}

func newUsersUpdateCmd(a *app) *cobra.Command {
	var username, password, firstName, lastName string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a user's fields",
		Long: `Update a user's fields. Only the flags given are changed; an empty
--password keeps the current one.`,
		Example: `  fakeapi users update 1 --first-name Robert`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var upd records.UserUpdate
			f := cmd.Flags()
			if f.Changed("username") {
				upd.Username = &username
			}
			if f.Changed("password") {
				upd.Password = &password
			}
			if f.Changed("first-name") {
				upd.FirstName = &firstName
			}
			if f.Changed("last-name") {
				upd.LastName = &lastName
			}

			a.authenticate()
			if err := a.users.Update(cmd.Context(), id, upd); err != nil {
				return err
			}
			return a.done(cmd, "Updated user %d", id)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&username, "username", "u", "", "New username")
	f.StringVarP(&password, "password", "p", "", "New password")
	f.StringVar(&firstName, "first-name", "", "New first name")
	f.StringVar(&lastName, "last-name", "", "New last name")
	return cmd
}

func newUsersDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a.authenticate()
			if err := a.users.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return a.done(cmd, "Deleted user %d", id)
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}
