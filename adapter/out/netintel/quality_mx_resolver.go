// Package netintel implements the network-facing verification adapters.
package netintel

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"quality_server/core/domain"
)

// DNSResolverConfig tunes the MX resolution adapter.
type DNSResolverConfig struct {
	Timeout           time.Duration // per-lookup bound (default 5s)
	RequestsPerSecond float64       // DNS pacing (default 20)
	Burst             int           // limiter burst (default 40)
}

// DefaultDNSResolverConfig returns sensible defaults.
func DefaultDNSResolverConfig() *DNSResolverConfig {
	return &DNSResolverConfig{
		Timeout:           5 * time.Second,
		RequestsPerSecond: 20,
		Burst:             40,
	}
}

// DNSResolver resolves MX records via the system resolver, rate limited
// and fenced by a circuit breaker so a broken resolver degrades fast
// instead of stalling every verify call.
type DNSResolver struct {
	resolver *net.Resolver
	config   *DNSResolverConfig
	limiter  *rate.Limiter
	cb       *gobreaker.CircuitBreaker
	log      zerolog.Logger
}

// NewDNSResolver creates the MX resolution adapter.
func NewDNSResolver(config *DNSResolverConfig, log zerolog.Logger) *DNSResolver {
	if config == nil {
		config = DefaultDNSResolverConfig()
	}
	adapterLog := log.With().Str("component", "dns_resolver").Logger()

	cbSettings := gobreaker.Settings{
		Name:        "mx-resolver",
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures > 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.6)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			adapterLog.Warn().Str("breaker", name).
				Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}

	return &DNSResolver{
		resolver: net.DefaultResolver,
		config:   config,
		limiter:  rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
		cb:       gobreaker.NewCircuitBreaker(cbSettings),
		log:      adapterLog,
	}
}

// ResolveMX looks up mail exchangers for a domain. NXDOMAIN-style
// "no such host" answers are an empty record set, not an error; the
// pipeline treats them as a risky signal rather than a failure.
func (r *DNSResolver) ResolveMX(ctx context.Context, mailDomain string) ([]domain.MXRecord, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	records, err := r.cb.Execute(func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()

		mxs, err := r.resolver.LookupMX(lookupCtx, mailDomain)
		if err != nil {
			var dnsErr *net.DNSError
			if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
				return []domain.MXRecord{}, nil
			}
			return nil, err
		}

		out := make([]domain.MXRecord, 0, len(mxs))
		for _, mx := range mxs {
			out = append(out, domain.MXRecord{Exchange: mx.Host, Priority: mx.Pref})
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return records.([]domain.MXRecord), nil
}
