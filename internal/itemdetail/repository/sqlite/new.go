package sqlite

import (
	"database/sql"
	"fmt"

	"item-details-service/internal/itemdetail/repository"
	"item-details-service/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the itemdetail domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("itemdetail/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// NewHistory creates a SQLite-backed HistoryRepository sharing the same handle.
func NewHistory(db *sql.DB, l log.Logger) repository.HistoryRepository {
	if db == nil {
		panic("itemdetail/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("itemdetail/repository/sqlite.%s", method)
}
