package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Column is a column that EnsureColumns adds when missing.
type Column struct {
	Name       string
	Definition string
}

// UserColumns were added to users after the first schema; databases created
// before them are upgraded in place.
var UserColumns = []Column{
	{Name: "first_name", Definition: "TEXT NOT NULL DEFAULT ''"},
	{Name: "phone", Definition: "TEXT NOT NULL DEFAULT ''"},
	{Name: "points", Definition: "INTEGER NOT NULL DEFAULT 0 CHECK (points >= 0)"},
}

// Migrate applies the embedded migrations and then the additive user columns.
// It is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err := EnsureColumns(ctx, db, "users", UserColumns); err != nil {
		return err
	}
	return nil
}

// EnsureColumns adds every column of cols that table does not have yet.
// Running it again is a no-op.
func EnsureColumns(ctx context.Context, db *sql.DB, table string, cols []Column) error {
	existing, err := columnNames(ctx, db, table)
	if err != nil {
		return err
	}

	for _, c := range cols {
		if _, ok := existing[c.Name]; ok {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, c.Name, c.Definition)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("add column %s.%s: %w", table, c.Name, err)
		}
		existing[c.Name] = struct{}{}
	}
	return nil
}

func columnNames(ctx context.Context, db *sql.DB, table string) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, fmt.Errorf("table info %s: %w", table, err)
	}
	defer rows.Close()

	names := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		names[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("table %s does not exist", table)
	}
	return names, nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct {
	log zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Fatal().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
