// Package store persists users and products. Three interchangeable
// backends implement the same interface; the driver is picked once at
// startup from configuration.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Elyse-t/ecormmerce-api/internal/config"
)

var (
	// ErrNotFound is returned when a lookup by primary key matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert would violate a unique column.
	ErrDuplicate = errors.New("duplicate key")
)

type Store interface {
	InsertUser(ctx context.Context, username, email, passwordHash string) (int64, error)
	FindUserByUsername(ctx context.Context, username string) (*User, error)

	CreateProduct(ctx context.Context, p *Product) error
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	UpdateProduct(ctx context.Context, id int64, p Product) (*Product, error)
	UpdateProductQuantity(ctx context.Context, id int64, quantity int64) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	Close() error
}

// splitStatements breaks a schema script into single statements for
// drivers that reject multi-statement Exec calls.
func splitStatements(script string) []string {
	var out []string
	for _, stmt := range strings.Split(script, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// Open selects a backend by cfg.Driver.
func Open(cfg config.DatabaseConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite":
		return OpenSQLite(cfg.Path)
	case "mysql":
		return OpenMySQL(cfg)
	case "postgres":
		return OpenPostgres(cfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
