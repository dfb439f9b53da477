package db

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

//go:embed migration/postgres/*.sql migration/sqlite/*.sql
var migrationFS embed.FS

// Open connects to the configured database and applies the embedded schema
// migrations for that driver. Supported drivers: postgres, sqlite.
func Open(driver, source string) (*sql.DB, error) {
	conn, err := sql.Open(driver, source)

	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		// sqlite has a single writer; one pooled connection also keeps
		// :memory: databases from being re-created per connection
		conn.SetMaxOpenConns(1)
	}

	if err := migrate(conn, driver); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

func migrate(conn *sql.DB, driver string) error {
	dir := "migration/" + driver

	entries, err := migrationFS.ReadDir(dir)

	if err != nil {
		return fmt.Errorf("unsupported database driver %q: %w", driver, err)
	}

	var files []string

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)

	for _, name := range files {
		script, err := migrationFS.ReadFile(dir + "/" + name)

		if err != nil {
			return err
		}

		if _, err := conn.Exec(string(script)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
	}

	return nil
}
