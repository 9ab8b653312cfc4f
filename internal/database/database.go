package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

var DB *pgxpool.Pool

// InitDB menginisialisasi connection pool PostgreSQL.
func InitDB(ctx context.Context, connString string) error {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return fmt.Errorf("error parsing connection string: %w", err)
	}

	if raw := os.Getenv("DB_MAX_CONNS"); raw != "" {
		if maxConns, err := strconv.Atoi(raw); err == nil && maxConns > 0 {
			config.MaxConns = int32(maxConns)
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("error creating connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("error pinging database: %w", err)
	}

	DB = pool
	log.Println("Successfully connected to database")
	return nil
}

// CloseDB menutup connection pool.
func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
