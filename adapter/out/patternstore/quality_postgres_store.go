package patternstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/jmoiron/sqlx"

	"quality_server/core/domain"
)

// PostgresStore keeps one row per domain with an atomic upsert.
type PostgresStore struct {
	db *sqlx.DB
}

const patternSchema = `
CREATE TABLE IF NOT EXISTS domain_patterns (
	domain        TEXT PRIMARY KEY,
	distribution  JSONB NOT NULL,
	last_updated  TIMESTAMPTZ NOT NULL,
	ttl_ms        BIGINT NOT NULL
)`

// NewPostgresStore creates a Postgres-backed pattern store.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the patterns table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, patternSchema); err != nil {
		return fmt.Errorf("create domain_patterns table: %w", err)
	}
	return nil
}

// Get returns the stored pattern, or (nil, nil) when absent.
func (s *PostgresStore) Get(ctx context.Context, mailDomain string) (*domain.DomainPattern, error) {
	var row struct {
		Domain       string    `db:"domain"`
		Distribution []byte    `db:"distribution"`
		LastUpdated  time.Time `db:"last_updated"`
		TTLMs        int64     `db:"ttl_ms"`
	}
	err := s.db.GetContext(ctx, &row,
		`SELECT domain, distribution, last_updated, ttl_ms FROM domain_patterns WHERE domain = $1`,
		mailDomain)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select pattern %s: %w", mailDomain, err)
	}

	raw := make(map[string]float64)
	if err := json.Unmarshal(row.Distribution, &raw); err != nil {
		return nil, fmt.Errorf("decode distribution %s: %w", mailDomain, err)
	}
	dist := make(map[domain.PatternKind]float64, len(raw))
	for kind, prob := range raw {
		dist[domain.PatternKind(kind)] = prob
	}
	return &domain.DomainPattern{
		Domain:       row.Domain,
		Distribution: dist,
		LastUpdated:  row.LastUpdated,
		TTL:          time.Duration(row.TTLMs) * time.Millisecond,
	}, nil
}

// Put upserts the domain's row.
func (s *PostgresStore) Put(ctx context.Context, pattern *domain.DomainPattern) error {
	raw := make(map[string]float64, len(pattern.Distribution))
	for kind, prob := range pattern.Distribution {
		raw[string(kind)] = prob
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encode distribution %s: %w", pattern.Domain, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO domain_patterns (domain, distribution, last_updated, ttl_ms)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (domain) DO UPDATE SET
			distribution = EXCLUDED.distribution,
			last_updated = EXCLUDED.last_updated,
			ttl_ms       = EXCLUDED.ttl_ms`,
		pattern.Domain, data, pattern.LastUpdated, pattern.TTL.Milliseconds())
	if err != nil {
		return fmt.Errorf("upsert pattern %s: %w", pattern.Domain, err)
	}
	return nil
}
