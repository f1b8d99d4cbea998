package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// OpenPostgres opens a pooled database/sql handle over the pgx driver and pings it.
func OpenPostgres(ctx context.Context, connStr string) (*sql.DB, error) {
	if connStr == "" {
		return nil, fmt.Errorf("missing DB_CONNECTION_STRING")
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("could not open db connection: %w", err)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to the database: %w", err)
	}
	return db, nil
}

// ConnectPostgres is OpenPostgres for process startup: it exits on failure.
func ConnectPostgres(connStr string, autoMigrate bool) *sql.DB {
	ctx := context.Background()
	db, err := OpenPostgres(ctx, connStr)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	if autoMigrate {
		if err := Migrate(ctx, db); err != nil {
			log.Fatalf("failed to migrate postgres: %v", err)
		}
	}
	return db
}

// Migrate applies the embedded schema files in name order. Every file is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)
	for _, name := range names {
		stmt, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(stmt)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		log.Printf("[database] applied migration %s", name)
	}
	return nil
}
