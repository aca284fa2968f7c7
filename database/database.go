package database

import (
	"context"
	"fmt"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"dulcetienda_server/structs"
)

// DB wraps the bun database handle. Tests construct it over an in-memory
// sqlite connection instead of going through Connect.
type DB struct {
	*bun.DB
}

// Connect opens the Postgres connection pool described by the configuration
// and verifies it with a ping.
func Connect(cfg *structs.Config, logger *gecho.Logger) (*DB, error) {
	dbCfg := cfg.Database

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		dbCfg.User, dbCfg.Password, dbCfg.Host, dbCfg.Port, dbCfg.Name)

	pgxCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	sqldb := stdlib.OpenDB(*pgxCfg)
	sqldb.SetMaxOpenConns(dbCfg.MaxConns)
	sqldb.SetMaxIdleConns(dbCfg.MinConns)
	sqldb.SetConnMaxLifetime(dbCfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(dbCfg.MaxIdleTime)

	db := &DB{bun.NewDB(sqldb, pgdialect.New())}
	db.AddQueryHook(&slowQueryHook{logger: logger, threshold: 1 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database successfully")

	return db, nil
}

// Close closes the underlying connection pool.
func (db *DB) Close() error {
	return db.DB.Close()
}

// Health checks the database connection health.
func (db *DB) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// slowQueryHook implements bun.QueryHook to surface slow statements.
type slowQueryHook struct {
	logger    *gecho.Logger
	threshold time.Duration
}

func (h *slowQueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *slowQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)
	if duration > h.threshold {
		h.logger.Warn("Slow database query detected",
			gecho.Field("query", event.Query),
			gecho.Field("duration", duration),
		)
	}
}
