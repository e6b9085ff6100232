package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/Elyse-t/ecormmerce-api/internal/config"
)

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(255) UNIQUE,
	email VARCHAR(255) UNIQUE,
	password_hash VARCHAR(255)
);
CREATE TABLE IF NOT EXISTS products (
	productid BIGINT AUTO_INCREMENT PRIMARY KEY,
	productname VARCHAR(255),
	description TEXT,
	quantity INT,
	price DOUBLE
);`

// OpenMySQL connects to a MySQL server and ensures the schema exists.
func OpenMySQL(cfg config.DatabaseConfig) (Store, error) {
	// clientFoundRows makes RowsAffected count matched rows, so an
	// update that writes identical values is not mistaken for a miss.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&clientFoundRows=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	db, err := sql.Open("mysql", dsn)
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

	// MySQL does not run multiple statements per Exec by default.
	for _, stmt := range splitStatements(mysqlSchema) {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &sqlStore{db: db, isDuplicate: isMySQLDuplicate}, nil
}

func isMySQLDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
