// Package postgres implements a Store backed by PostgreSQL.
package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasetyo/duitbot/pkg/api"
	"github.com/prasetyo/duitbot/pkg/ledger"
)

//go:embed 001_create_entries.sql
var migrationSQL string

// Config holds the PostgreSQL connection configuration.
type Config struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string

	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize int
}

// Store keeps the ledger in an entries table.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// New creates a PostgreSQL store and runs the schema migration.
func New(cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.Port == 0 {
		cfg.Port = 5432
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	if cfg.MaxPoolSize == 0 {
		cfg.MaxPoolSize = 10
	}

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxPoolSize)
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info("connected to PostgreSQL",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Database,
	)

	s := &Store{pool: pool, logger: logger}

	if err := s.runMigrations(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

func (s *Store) runMigrations(ctx context.Context) error {
	s.logger.Info("running database migrations")

	if _, err := s.pool.Exec(ctx, migrationSQL); err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}

	s.logger.Info("migrations completed")
	return nil
}

// Append inserts one ledger row.
func (s *Store) Append(ctx context.Context, rec api.Record) error {
	createdAt, err := time.Parse(api.DateFormat, rec.Date)
	if err != nil {
		s.logger.Warn("invalid date format, using current time", "date", rec.Date, "error", err)
		createdAt = time.Now()
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO entries (created_at, amount, description, user_id, username)
		VALUES ($1, $2, $3, $4, $5)`,
		createdAt,
		ledger.ParseAmount(rec.Amount),
		rec.Description,
		rec.UserID,
		rec.Username,
	)
	if err != nil {
		return fmt.Errorf("inserting entry: %w", err)
	}

	return nil
}

// Records returns every ledger row in append order. Timestamps are
// rendered back into the canonical Date string so records look the same
// regardless of which store produced them.
func (s *Store) Records(ctx context.Context) ([]api.Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT created_at, amount, description, user_id, username
		FROM entries
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var records []api.Record
	for rows.Next() {
		var (
			createdAt time.Time
			amount    float64
			rec       api.Record
		)
		if err := rows.Scan(&createdAt, &amount, &rec.Description, &rec.UserID, &rec.Username); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		rec.Date = createdAt.Format(api.DateFormat)
		rec.Amount = amount
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}

	return records, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
