package netintel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"quality_server/core/domain"
)

// DeliveryIntel stores delivery outcomes harvested from bounce webhooks
// and send logs, and answers probe questions from that record instead of
// opening SMTP connections. Non-invasive by design: the "probe" is a
// lookup.
type DeliveryIntel struct {
	db  *sql.DB
	log zerolog.Logger
}

const intelSchema = `
CREATE TABLE IF NOT EXISTS delivery_events (
	email       TEXT NOT NULL,
	domain      TEXT NOT NULL,
	outcome     TEXT NOT NULL CHECK (outcome IN ('accept', 'reject')),
	observed_at INTEGER NOT NULL,
	source      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_delivery_events_email ON delivery_events (email, observed_at);
CREATE INDEX IF NOT EXISTS idx_delivery_events_domain ON delivery_events (domain, observed_at)`

// NewDeliveryIntel opens (or creates) the intelligence database at path.
// Use ":memory:" for tests.
func NewDeliveryIntel(path string, log zerolog.Logger) (*DeliveryIntel, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open delivery intel db: %w", err)
	}
	for _, stmt := range strings.Split(intelSchema, ";") {
		if stmt = strings.TrimSpace(stmt); stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate delivery intel db: %w", err)
		}
	}
	return &DeliveryIntel{
		db:  db,
		log: log.With().Str("component", "delivery_intel").Logger(),
	}, nil
}

// Close releases the underlying database handle.
func (d *DeliveryIntel) Close() error {
	return d.db.Close()
}

// RecordDelivery ingests one webhook-derived delivery outcome.
func (d *DeliveryIntel) RecordDelivery(ctx context.Context, email string, outcome domain.ProbeVerdict, source string) error {
	if outcome != domain.ProbeAccept && outcome != domain.ProbeReject {
		return fmt.Errorf("unsupported outcome %q", outcome)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	mailDomain := domainOf(email)

	_, err := d.db.ExecContext(ctx,
		`INSERT INTO delivery_events (email, domain, outcome, observed_at, source) VALUES (?, ?, ?, ?, ?)`,
		email, mailDomain, string(outcome), time.Now().UnixMilli(), source)
	if err != nil {
		return fmt.Errorf("record delivery event: %w", err)
	}
	return nil
}

// SMTPProbe returns the most recent recorded verdict for the address,
// or unknown when nothing has been observed.
func (d *DeliveryIntel) SMTPProbe(ctx context.Context, email string) (domain.ProbeVerdict, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var outcome string
	err := d.db.QueryRowContext(ctx,
		`SELECT outcome FROM delivery_events WHERE email = ? ORDER BY observed_at DESC LIMIT 1`,
		email).Scan(&outcome)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ProbeUnknown, nil
	}
	if err != nil {
		return domain.ProbeUnknown, fmt.Errorf("query delivery events: %w", err)
	}
	return domain.ProbeVerdict(outcome), nil
}

// DetectCatchAll infers a catch-all verdict from recorded evidence: a
// domain that accepted several distinct local parts and never bounced
// looks like a catch-all; any recorded reject proves address-level
// filtering; otherwise unknown.
func (d *DeliveryIntel) DetectCatchAll(ctx context.Context, mailDomain string) (domain.CatchAllVerdict, error) {
	mailDomain = strings.ToLower(strings.TrimSpace(mailDomain))

	var accepts, rejects int
	err := d.db.QueryRowContext(ctx, `
		SELECT
			COUNT(DISTINCT CASE WHEN outcome = 'accept' THEN email END),
			COUNT(CASE WHEN outcome = 'reject' THEN 1 END)
		FROM delivery_events WHERE domain = ?`,
		mailDomain).Scan(&accepts, &rejects)
	if err != nil {
		return domain.CatchAllUnknown, fmt.Errorf("query domain evidence: %w", err)
	}

	switch {
	case rejects > 0:
		return domain.CatchAllNo, nil
	case accepts >= 5:
		return domain.CatchAllYes, nil
	default:
		return domain.CatchAllUnknown, nil
	}
}

func domainOf(email string) string {
	if at := strings.LastIndex(email, "@"); at >= 0 && at < len(email)-1 {
		return email[at+1:]
	}
	return ""
}
