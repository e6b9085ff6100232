package store

import (
	"context"
	"database/sql"
	"errors"
)

// sqlStore implements Store for drivers that use ? placeholders and
// support LastInsertId (sqlite, mysql). isDuplicate translates the
// driver's unique-constraint error.
type sqlStore struct {
	db          *sql.DB
	isDuplicate func(error) bool
}

func (s *sqlStore) InsertUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)",
		username, email, passwordHash)
	if err != nil {
		if s.isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (s *sqlStore) FindUserByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, email, password_hash FROM users WHERE username = ?",
		username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *sqlStore) CreateProduct(ctx context.Context, p *Product) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO products (productname, description, quantity, price) VALUES (?, ?, ?, ?)",
		p.Name, p.Description, p.Quantity, p.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (s *sqlStore) ListProducts(ctx context.Context) ([]Product, error) {
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

func (s *sqlStore) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var p Product
	err := s.db.QueryRowContext(ctx,
		"SELECT productid, productname, description, quantity, price FROM products WHERE productid = ?",
		id).Scan(&p.ID, &p.Name, &p.Description, &p.Quantity, &p.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *sqlStore) UpdateProduct(ctx context.Context, id int64, p Product) (*Product, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET productname = ?, description = ?, quantity = ?, price = ? WHERE productid = ?",
		p.Name, p.Description, p.Quantity, p.Price, id)
	if err != nil {
		return nil, err
	}
	if err := requireRowChanged(res); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *sqlStore) UpdateProductQuantity(ctx context.Context, id int64, quantity int64) (*Product, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET quantity = ? WHERE productid = ?", quantity, id)
	if err != nil {
		return nil, err
	}
	if err := requireRowChanged(res); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

func (s *sqlStore) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE productid = ?", id)
	if err != nil {
		return err
	}
	return requireRowChanged(res)
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func requireRowChanged(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
