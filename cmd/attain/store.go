package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/toastdriven/attain/pkg/corpus"
)

// openStore opens the configured SQLite database, ensures the schema
// exists, and returns a ready corpus store. The caller owns both and
// should close the db (which invalidates the store's statements) when
// done.
func openStore() (*sql.DB, *corpus.Store, error) {
	path := viper.GetString("database_path")

	// The data source may carry driver parameters after '?'; only the
	// file part determines the directory to create.
	filePart, _, _ := strings.Cut(path, "?")
	if dir := filepath.Dir(filePart); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := initDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to set up schema: %w", err)
	}

	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create corpus store: %w", err)
	}
	store.SetLogger(logger)

	return db, store, nil
}
