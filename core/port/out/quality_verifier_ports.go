// Package out defines outbound ports implemented by adapters.
package out

import (
	"context"

	"quality_server/core/domain"
)

// MXResolver resolves the mail exchangers for a domain.
// The only DNS-capable dependency of the verification pipeline.
type MXResolver interface {
	ResolveMX(ctx context.Context, mailDomain string) ([]domain.MXRecord, error)
}

// CatchAllDetector decides whether a domain accepts mail for any local
// part. Implementations must not open SMTP connections from the core
// pipeline's call path without bounding their own latency.
type CatchAllDetector interface {
	DetectCatchAll(ctx context.Context, mailDomain string) (domain.CatchAllVerdict, error)
}

// SMTPProber returns a delivery verdict for a single email address.
// The reference implementation consults recorded delivery intelligence
// (bounce/webhook events) instead of probing a live server.
type SMTPProber interface {
	SMTPProbe(ctx context.Context, email string) (domain.ProbeVerdict, error)
}
