package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkordes/adventure-checklist/internal/domain"
)

func (c *cli) adventuresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "adventures",
		Aliases: []string{"adv"},
		Short:   "Create, list and delete adventures",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List adventures with their packing progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := c.svc.Adventures.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDESTINATION\tDATES\tTYPE\tPACKED")
			for _, a := range all {
				p := domain.ProgressOf(a.ChecklistItems)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d/%d\n",
					a.ID, a.Name, a.Destination, dateRange(a), scopedType(a), p.Checked, p.Total)
			}
			return w.Flush()
		},
	}

	var (
		name, destination, start, end, tripType, templateID string
		international                                       bool
	)
	create := &cobra.Command{
		Use:   "new",
		Short: "Create an adventure",
		Example: `  packlist adventures new --destination Yosemite --start 2025-06-01 --type Camping
  packlist adventures new --destination Tokyo --start 2025-10-01 --end 2025-10-10 --type City --international`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := domain.NewAdventure{
				Name:            name,
				Destination:     destination,
				TripType:        domain.TripType(tripType),
				IsInternational: international,
			}
			var err error
			if in.StartDate, err = parseDate("start", start); err != nil {
				return err
			}
			if end != "" {
				if in.EndDate, err = parseDate("end", end); err != nil {
					return err
				}
			}
			if templateID != "" {
				id, err := parseID("template", templateID)
				if err != nil {
					return err
				}
				in.TemplateID = &id
			}

			a, err := c.svc.Adventures.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %q (%s) with %d items\n", a.Name, a.ID, len(a.ChecklistItems))
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", `Adventure name (default "<type> Trip to <destination>")`)
	create.Flags().StringVar(&destination, "destination", "", "Destination (required)")
	create.Flags().StringVar(&start, "start", "", "Start date, YYYY-MM-DD (required)")
	create.Flags().StringVar(&end, "end", "", "End date, YYYY-MM-DD (default: start date)")
	create.Flags().StringVar(&tripType, "type", "", "Trip type: Camping, Snowboarding, City or Business (required)")
	create.Flags().BoolVar(&international, "international", false, "International trip")
	create.Flags().StringVar(&templateID, "template", "", "Template ID to copy the checklist from")
	_ = create.MarkFlagRequired("destination")
	_ = create.MarkFlagRequired("start")
	_ = create.MarkFlagRequired("type")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show an adventure and its checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("adventure", args[0])
			if err != nil {
				return err
			}
			a, err := c.svc.Adventures.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s, %s (%s)\n\n", a.Name, a.Destination, dateRange(a), scopedType(a))
			printItems(out, a.ChecklistItems)
			return nil
		},
	}

	var asCSV bool
	export := &cobra.Command{
		Use:   "export <id>",
		Short: "Export an adventure's checklist as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("adventure", args[0])
			if err != nil {
				return err
			}
			rows, err := c.svc.Export.Export(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !asCSV {
				for _, r := range rows {
					if r.Position > 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "%d. %s %s\n", r.Position, checkbox(r.IsChecked), r.ItemName)
					}
				}
				return nil
			}
			return writeExportCSV(cmd.OutOrStdout(), rows)
		},
	}
	export.Flags().BoolVar(&asCSV, "csv", false, "Write CSV with a header row")

	var templateName string
	saveAsTemplate := &cobra.Command{
		Use:   "save-template <id>",
		Short: "Save an adventure's checklist as a new template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("adventure", args[0])
			if err != nil {
				return err
			}
			t, err := c.svc.Adventures.SaveAsTemplate(cmd.Context(), id, templateName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved template %q (%s) with %d items\n", t.Name, t.ID, t.ItemsCount())
			return nil
		},
	}
	saveAsTemplate.Flags().StringVar(&templateName, "name", "", "Template name (required)")
	_ = saveAsTemplate.MarkFlagRequired("name")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an adventure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("adventure", args[0])
			if err != nil {
				return err
			}
			if err := c.svc.Adventures.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, create, show, export, saveAsTemplate, del)
	return cmd
}

func writeExportCSV(out io.Writer, rows []domain.ExportRow) error {
	w := csv.NewWriter(out)
	if err := w.Write(domain.ExportCSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write(r.CSVRecord()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// printItems writes a numbered checklist; the numbers are the positions
// accepted by "items rm --at".
func printItems(out io.Writer, items []domain.ChecklistItem) {
	for i, it := range items {
		fmt.Fprintf(out, "%3d %s %s  %s\n", i, checkbox(it.IsChecked), it.Name, it.ID)
	}
	fmt.Fprintln(out, "\n"+domain.ProgressOf(items).Label())
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func parseDate(what, s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s date %q must be YYYY-MM-DD", what, s)
	}
	return t, nil
}

func dateRange(a domain.Adventure) string {
	start := a.StartDate.Format(time.DateOnly)
	if a.EndDate.Equal(a.StartDate) {
		return start
	}
	return start + " to " + a.EndDate.Format(time.DateOnly)
}

func scopedType(a domain.Adventure) string {
	return string(domain.ScopeOf(a.IsInternational)) + " " + string(a.TripType)
}
