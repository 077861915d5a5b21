package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// MemoryDSN returns the DSN of a named in-memory SQLite database. The shared cache lets
// several handles in the same process reach the same database while at least one stays open.
func MemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

// NewSQLiteMemory opens a named in-memory SQLite database.
// The handle is limited to a single connection that is never recycled, since the
// database lives exactly as long as its last connection.
func NewSQLiteMemory(ctx context.Context, name string) (*sqlx.DB, error) {
	if name == "" {
		return nil, fmt.Errorf("database name cannot be empty")
	}

	db, err := sqlx.ConnectContext(ctx, DriverName, MemoryDSN(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database %s: %w", name, err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	return db, nil
}

// CloseDB closes the database handle, dropping an in-memory database with it.
func CloseDB(db *sqlx.DB) {
	if db != nil {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v\n", err)
		}
	}
}
