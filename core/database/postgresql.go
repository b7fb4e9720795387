package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"meetup-planner/core/config"
	"meetup-planner/core/constants"
	"meetup-planner/core/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type IDatabase interface {
	ExecContext(ctx context.Context, query string, args ...any) error
	ExecResultContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	PingContext(ctx context.Context) error
	SQLx() *sqlx.DB
}

type Database struct {
	sqlx *sqlx.DB
}

var _ IDatabase = (*Database)(nil)

// New wraps an existing handle, used by tests with sqlmock.
func New(db *sqlx.DB) *Database {
	return &Database{sqlx: db}
}

func InitDB(cfg config.DatabaseConfig) (*Database, error) {
	logger.Info("Initializing database...")

	sqlxDB, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	maxOpen, maxIdle, lifetime := cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxMinute
	if maxOpen == 0 {
		maxOpen = constants.DatabaseMaxOpenConns
	}
	if maxIdle == 0 {
		maxIdle = constants.DatabaseMaxIdleConns
	}
	if lifetime == 0 {
		lifetime = constants.DatabaseConnMaxLifetime
	}
	sqlxDB.SetMaxOpenConns(maxOpen)
	sqlxDB.SetMaxIdleConns(maxIdle)
	sqlxDB.SetConnMaxLifetime(time.Duration(lifetime) * time.Minute)

	if err = sqlxDB.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database initialized successfully",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
		"user", cfg.User,
		"maxOpenConns", maxOpen,
		"maxIdleConns", maxIdle,
		"connMaxLifetime", lifetime,
	)

	return &Database{sqlx: sqlxDB}, nil
}

func (d *Database) ExecContext(ctx context.Context, query string, args ...any) error {
	_, err := d.sqlx.ExecContext(ctx, query, args...)
	return err
}

func (d *Database) ExecResultContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.sqlx.ExecContext(ctx, query, args...)
}

func (d *Database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.GetContext(ctx, dest, query, args...)
}

func (d *Database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.SelectContext(ctx, dest, query, args...)
}

func (d *Database) PingContext(ctx context.Context) error {
	return d.sqlx.PingContext(ctx)
}

// WithTx runs fn inside a transaction. fn's error or a panic rolls back.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := d.sqlx.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Error("Database:WithTx:Rollback", "error", rbErr)
			}
			return
		}
		err = tx.Commit()
	}()

	return fn(tx)
}

func (d *Database) SQLx() *sqlx.DB {
	return d.sqlx
}

func (d *Database) Close() error {
	return d.sqlx.Close()
}
