package db

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// RunMigrations applies every *.up.sql file in migrationsDir in name order,
// tracking applied versions in schema_migrations.
func RunMigrations(ctx context.Context, db *sql.DB, migrationsDir string) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT now())`)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		return err
	}

	var files []fs.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry)
		}
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name() < files[j].Name()
	})

	for _, file := range files {
		version := strings.SplitN(file.Name(), "_", 2)[0]
		err = db.QueryRowContext(ctx, `SELECT true FROM schema_migrations WHERE version=$1`, version).Scan(new(bool))
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		data, readErr := os.ReadFile(filepath.Join(migrationsDir, file.Name()))
		if readErr != nil {
			return readErr
		}
		if _, execErr := db.ExecContext(ctx, string(data)); execErr != nil {
			return execErr
		}
		if _, insertErr := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1) ON CONFLICT (version) DO NOTHING`, version); insertErr != nil {
			return insertErr
		}
	}

	return nil
}
