package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/kamaal111/forex-api/deploy/config"
	"github.com/kamaal111/forex-api/internal/entities"
)

type Storage struct {
	db  *pgxpool.Pool
	cfg *config.Config
}

func NewStorage(pool *pgxpool.Pool, cfg *config.Config) *Storage {
	return &Storage{
		db:  pool,
		cfg: cfg,
	}
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	const op = "storage.postgres.New"

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Storage.Host,
		cfg.Storage.Port,
		cfg.Storage.User,
		cfg.Storage.Password,
		cfg.Storage.DBName,
		cfg.Storage.SSLMode,
		cfg.Storage.Schema,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: parse config failed: %w", op, err)
	}
	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = 10 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(ctx, cfg.Storage.Timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		slog.Error("pgxpool connect failed", "error", err)
		return nil, fmt.Errorf("%s: pgxpool connect failed: %w", op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		slog.Error("pgxpool ping failed", "error", err)
		pool.Close()
		return nil, fmt.Errorf("%s: ping failed: %w", op, err)
	}

	storage := NewStorage(pool, cfg)

	slog.Info("PostgresSQL storage initialized successfully")
	return storage, nil
}

func (s *Storage) Close() error {
	s.db.Close()
	return nil
}

func (s *Storage) GetAllRates(ctx context.Context) ([]entities.ExchangeRateRecord, error) {
	const op = "storage.postgres.GetAllRates"

	query := `
		SELECT base, date, rates
		FROM exchange_rates
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	defer rows.Close()

	records := make([]entities.ExchangeRateRecord, 0)
	for rows.Next() {
		var record entities.ExchangeRateRecord
		if err := rows.Scan(&record.Base, &record.Date, &record.Rates); err != nil {
			return nil, errors.Wrap(err, op)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, op)
	}

	return records, nil
}

func (s *Storage) GetLatestRate(ctx context.Context, base entities.Currency) (*entities.ExchangeRateRecord, error) {
	const op = "storage.postgres.GetLatestRate"

	query := `
		SELECT base, date, rates
		FROM exchange_rates
		WHERE base = $1
		ORDER BY date DESC
		LIMIT 1
	`

	var record entities.ExchangeRateRecord
	err := s.db.QueryRow(ctx, query, base.String()).Scan(&record.Base, &record.Date, &record.Rates)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	return &record, nil
}
