package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWTSecret string
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	// Driver selects the backend: sqlite, mysql or postgres.
	Driver string
	// Path is the database file for the sqlite driver.
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	serverPort, _ := strconv.Atoi(getEnv("SERVER_PORT", "8080"))
	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "3306"))

	return &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "./database.sqlite"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "gouser"),
			Password: getEnv("DB_PASSWORD", "gopass"),
			Name:     getEnv("DB_NAME", "godb"),
		},
		JWTSecret: getEnv("JWT_SECRET", "my_secret_key"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
