// Package migrations embeds the SQL migration files for the key-value table
// and applies them with goose. Each supported SQL dialect has its own
// directory because column types differ.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Postgres returns the migrations for the Postgres dialect.
func Postgres() fs.FS { return sub("postgres") }

// SQLite returns the migrations for the SQLite dialect.
func SQLite() fs.FS { return sub("sqlite") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(FS, dir)
	if err != nil {
		// The directories are embedded above; a failure here is a build defect.
		panic("migrations: " + err.Error())
	}
	return f
}

// Up applies every pending migration for dialect to db.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect) error {
	var fsys fs.FS
	switch dialect {
	case goose.DialectPostgres:
		fsys = Postgres()
	case goose.DialectSQLite3:
		fsys = SQLite()
	default:
		return fmt.Errorf("migrations.Up: unsupported dialect %q", dialect)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migrations.Up: create goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migrations.Up: run migrations: %w", err)
	}
	return nil
}
