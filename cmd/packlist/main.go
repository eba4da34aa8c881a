// Command packlist manages adventures, templates and their packing
// checklists from the terminal. It uses the same store configuration as the
// API server (STORE_DRIVER, SQLITE_PATH, ...), so both can share one database.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pkordes/adventure-checklist/internal/app"
	"github.com/pkordes/adventure-checklist/internal/config"
	"github.com/pkordes/adventure-checklist/internal/domain"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// cli holds the state shared by every subcommand: flags and the opened store.
type cli struct {
	dbPath  string
	verbose bool

	store  *app.Store
	svc    app.Services
	stderr io.Writer
}

// run executes one packlist invocation and always releases the store.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c := &cli{stderr: stderr}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if c.store != nil {
		if cerr := c.store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "packlist",
		Short: "Manage adventures and packing checklists",
		Long: `packlist manages trips ("adventures") and their packing checklists.

New adventures copy their checklist from a template: either one you name
with --template or the built-in template for the trip type and scope.
Checked items always sort below unchecked ones.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
	}
	root.PersistentFlags().StringVar(&c.dbPath, "db", "", "SQLite database file (overrides SQLITE_PATH)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(c.adventuresCmd(), c.itemsCmd(), c.templatesCmd())
	return root
}

// open loads configuration and opens the store before any subcommand runs.
func (c *cli) open(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.dbPath != "" {
		cfg.StoreDriver = config.DriverSQLite
		cfg.SQLitePath = c.dbPath
	}

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))

	store, err := app.OpenStore(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	c.store = &store
	c.svc = app.NewServices(store, log)
	return nil
}

// parseID parses a UUID argument, naming it in the error.
func parseID(what, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %q is not a valid ID", what, s)
	}
	return id, nil
}

// parseOwner accepts "adventure(s)" or "template(s)".
func parseOwner(s string) (domain.OwnerKind, error) {
	switch s {
	case "adventure", "adventures":
		return domain.OwnerAdventure, nil
	case "template", "templates":
		return domain.OwnerTemplate, nil
	}
	return "", fmt.Errorf("owner must be adventure or template, got %q", s)
}
