// Package database manages the PostgreSQL connection pool and schema
// migrations. Connections use the pgx driver through database/sql.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/admin-shell/pkg/lifecycle"
)

// ErrNotReady indicates the connection has not been verified.
var ErrNotReady = errors.New("database not ready")

// System owns the connection pool.
type System interface {
	// Connection returns the pool. It is usable before Start completes.
	Connection() *sql.DB

	// Start verifies connectivity on startup and closes the pool on shutdown.
	Start(lc *lifecycle.Coordinator) error
}

type db struct {
	conn        *sql.DB
	logger      *slog.Logger
	connTimeout time.Duration
}

// New opens a connection pool from cfg. No connection is made until first use.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	conn, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	return &db{
		conn:        conn,
		logger:      logger.With("system", "database"),
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

// Open returns a configured *sql.DB for cfg.
func Open(cfg *Config) (*sql.DB, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return conn, nil
}

func (d *db) Connection() *sql.DB {
	return d.conn
}

func (d *db) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database connection")

	lc.OnStartup(func() {
		pingCtx, cancel := context.WithTimeout(lc.Context(), d.connTimeout)
		defer cancel()

		if err := d.conn.PingContext(pingCtx); err != nil {
			d.logger.Error("database ping failed", "error", err)
			return
		}
		d.logger.Info("database connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")

		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}

// Ping verifies connectivity within the connection timeout.
func Ping(ctx context.Context, conn *sql.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		return errors.Join(ErrNotReady, err)
	}
	return nil
}
