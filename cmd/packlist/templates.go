package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

func (c *cli) templatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"tmpl"},
		Short:   "Manage checklist templates",
	}

	var custom bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List templates (the defaults are created on first use)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				all []domain.Template
				err error
			)
			if custom {
				all, err = c.svc.Templates.ListCustom(cmd.Context())
			} else {
				all, err = c.svc.Templates.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tITEMS\tCREATED")
			for _, t := range all {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					t.ID, t.Name, t.TripType, t.ItemsCount(), t.CreationDate.Format(time.DateOnly))
			}
			return w.Flush()
		},
	}
	list.Flags().BoolVar(&custom, "custom", false, "Only user-created templates, newest first")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a template's checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("template", args[0])
			if err != nil {
				return err
			}
			t, err := c.svc.Templates.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n\n", t.Name, t.TripType)
			printItems(cmd.OutOrStdout(), t.ChecklistItems)
			return nil
		},
	}

	create := &cobra.Command{
		Use:   "new <name...>",
		Short: "Create an empty template",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := c.svc.Templates.Create(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created template %q (%s)\n", t.Name, t.ID)
			return nil
		},
	}

	rename := &cobra.Command{
		Use:   "rename <id> <name...>",
		Short: "Rename a template",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("template", args[0])
			if err != nil {
				return err
			}
			t, err := c.svc.Templates.Rename(cmd.Context(), id, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed to %q\n", t.Name)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("template", args[0])
			if err != nil {
				return err
			}
			if err := c.svc.Templates.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Replace all templates with the built-in defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := c.svc.Templates.Reset(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d default templates\n", len(all))
			return nil
		},
	}

	cmd.AddCommand(list, show, create, rename, del, reset)
	return cmd
}
