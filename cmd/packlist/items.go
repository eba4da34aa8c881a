package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

func (c *cli) itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Edit the checklist of an adventure or a template",
		Long: `Edit a checklist. <owner> is "adventure" or "template".

New items are added at the top. Toggling an item re-sorts the list so
unchecked items come first.`,
	}

	// withChecklist parses <owner> <id>, runs fn and prints the result.
	withChecklist := func(fn func(cmd *cobra.Command, kind domain.OwnerKind, args []string) (domain.Checklist, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			kind, err := parseOwner(args[0])
			if err != nil {
				return err
			}
			cl, err := fn(cmd, kind, args)
			if err != nil {
				return err
			}
			printItems(cmd.OutOrStdout(), cl.Items)
			return nil
		}
	}

	list := &cobra.Command{
		Use:   "list <owner> <id>",
		Short: "Show a checklist",
		Args:  cobra.ExactArgs(2),
		RunE: withChecklist(func(cmd *cobra.Command, kind domain.OwnerKind, args []string) (domain.Checklist, error) {
			id, err := parseID(string(kind), args[1])
			if err != nil {
				return domain.Checklist{}, err
			}
			return c.svc.Checklists.Get(cmd.Context(), kind, id)
		}),
	}

	add := &cobra.Command{
		Use:   "add <owner> <id> <name...>",
		Short: "Add an item at the top of a checklist",
		Args:  cobra.MinimumNArgs(3),
		RunE: withChecklist(func(cmd *cobra.Command, kind domain.OwnerKind, args []string) (domain.Checklist, error) {
			id, err := parseID(string(kind), args[1])
			if err != nil {
				return domain.Checklist{}, err
			}
			return c.svc.Checklists.AddItem(cmd.Context(), kind, id, strings.Join(args[2:], " "))
		}),
	}

	toggle := &cobra.Command{
		Use:   "toggle <owner> <id> <item-id>",
		Short: "Check or uncheck an item",
		Args:  cobra.ExactArgs(3),
		RunE: withChecklist(func(cmd *cobra.Command, kind domain.OwnerKind, args []string) (domain.Checklist, error) {
			id, err := parseID(string(kind), args[1])
			if err != nil {
				return domain.Checklist{}, err
			}
			itemID, err := parseID("item", args[2])
			if err != nil {
				return domain.Checklist{}, err
			}
			return c.svc.Checklists.ToggleItem(cmd.Context(), kind, id, itemID)
		}),
	}

	at := -1
	rm := &cobra.Command{
		Use:   "rm <owner> <id> [item-id]",
		Short: "Remove an item by ID, or by position with --at",
		Args:  cobra.RangeArgs(2, 3),
		RunE: withChecklist(func(cmd *cobra.Command, kind domain.OwnerKind, args []string) (domain.Checklist, error) {
			id, err := parseID(string(kind), args[1])
			if err != nil {
				return domain.Checklist{}, err
			}
			switch {
			case len(args) == 3 && at >= 0:
				return domain.Checklist{}, errors.New("give either an item ID or --at, not both")
			case len(args) == 3:
				itemID, err := parseID("item", args[2])
				if err != nil {
					return domain.Checklist{}, err
				}
				return c.svc.Checklists.RemoveItem(cmd.Context(), kind, id, itemID)
			case at >= 0:
				return c.svc.Checklists.RemoveItemAt(cmd.Context(), kind, id, at)
			default:
				return domain.Checklist{}, errors.New("give an item ID or --at")
			}
		}),
	}
	rm.Flags().IntVar(&at, "at", -1, "Zero-based position as shown by 'items list'")

	cmd.AddCommand(list, add, toggle, rm)
	return cmd
}
