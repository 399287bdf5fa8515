package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/fakeapi/pkg/records"
)

func newInventoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Manage inventory items",
	}
	cmd.AddCommand(
		newInventoryListCmd(a),
		newInventoryGetCmd(a),
		newInventoryAddCmd(a),
		newInventoryUpdateCmd(a),
		newInventoryDeleteCmd(a),
	)
	return cmd
}

func newInventoryListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.authenticate()
			items, err := a.inventory.List(cmd.Context())
			if err != nil {
				return err
			}
			return a.emit(cmd, items, func(w io.Writer) { printItems(w, items) })
		},
	}
}

func newInventoryGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a.authenticate()
			it, err := a.inventory.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if it == nil {
				return fmt.Errorf("item %d not found", id)
			}
			return a.emit(cmd, it, func(w io.Writer) { printItems(w, []records.Item{*it}) })
		},
	}
}

func newInventoryAddCmd(a *app) *cobra.Command {
	var pairs []string
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add an item",
		Example: `  fakeapi inventory add --field name="cordless drill" --field qty=3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields, err := parseFields(pairs)
			if err != nil {
				return err
			}
			a.authenticate()
			if err := a.inventory.Create(cmd.Context(), fields); err != nil {
				return err
			}
			return a.done(cmd, "Added item %d", a.records.Stats().LastItemID)
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "field", "f", nil, "Item field as key=value (repeatable)")
	return cmd
}

func newInventoryUpdateCmd(a *app) *cobra.Command {
	var pairs []string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Merge fields onto an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fields, err := parseFields(pairs)
			if err != nil {
				return err
			}
			a.authenticate()
			if err := a.inventory.Update(cmd.Context(), id, fields); err != nil {
				return err
			}
			return a.done(cmd, "Updated item %d", id)
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "field", "f", nil, "Item field as key=value (repeatable)")
	return cmd
}

func newInventoryDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a.authenticate()
			if err := a.inventory.Delete(cmd.Context(), id); err != nil {
				return err
			}
			return a.done(cmd, "Deleted item %d", id)
		},
	}
}
