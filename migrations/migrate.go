package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// gooseDialects maps a storage driver name to the goose dialect and the
// embedded directory holding its migrations.
var gooseDialects = map[string]struct {
	dialect string
	dir     string
}{
	"postgres": {dialect: "pgx", dir: "postgres"},
	"sqlite":   {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration of driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	target, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
