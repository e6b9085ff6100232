package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Elyse-t/ecormmerce-api/internal/config"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT UNIQUE,
	email TEXT UNIQUE,
	password_hash TEXT
);
CREATE TABLE IF NOT EXISTS products (
	productid BIGSERIAL PRIMARY KEY,
	productname TEXT,
	description TEXT,
	quantity INTEGER,
	price DOUBLE PRECISION
);`

// pgStore is the PostgreSQL backend. It cannot share sqlStore because
// of $n placeholders and insert-returning-id semantics.
type pgStore struct {
	db *sql.DB
}

// OpenPostgres connects to a PostgreSQL server via the pgx stdlib
// driver and ensures the schema exists.
func OpenPostgres(cfg config.DatabaseConfig) (Store, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	for _, stmt := range splitStatements(pgSchema) {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &pgStore{db: db}, nil
}

func isPostgresDuplicate(err error) bool {
	var pe *pgconn.PgError
	return errors.As(err, &pe) && pe.Code == "23505"
}

func (s *pgStore) InsertUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id",
		username, email, passwordHash).Scan(&id)
	if err != nil {
		if isPostgresDuplicate(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return id, nil
}

func (s *pgStore) FindUserByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash FROM users WHERE username = $1",
		username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *pgStore) CreateProduct(ctx context.Context, p *Product) error {
	return s.db.QueryRowContext(ctx,
		"INSERT INTO products (productname, description, quantity, price) VALUES ($1, $2, $3, $4) RETURNING productid",
		p.Name, p.Description, p.Quantity, p.Price).Scan(&p.ID)
}

func (s *pgStore) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT productid, productname, description, quantity, price FROM products ORDER BY productid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *pgStore) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := s.db.QueryRowContext(ctx,
		"SELECT productid, productname, description, quantity, price FROM products WHERE productid = $1",
		id).Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *pgStore) UpdateProduct(ctx context.Context, id int64, p Product) (*Product, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET productname = $1, description = $2, quantity = $3, price = $4 WHERE productid = $5",
		p.Name, p.Description, p.Quantity, p.Price, id)
	if err != nil {
		return nil, err
	}
	if err := requireRowChanged(res); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *pgStore) UpdateProductQuantity(ctx context.Context, id int64, quantity int64) (*Product, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET quantity = $1 WHERE productid = $2", quantity, id)
	if err != nil {
		return nil, err
	}
	if err := requireRowChanged(res); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *pgStore) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE productid = $1", id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (s *pgStore) Close() error {
	return s.db.Close()
}
