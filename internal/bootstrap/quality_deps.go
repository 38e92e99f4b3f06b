package bootstrap

import (
	"context"
	"fmt"
	"time"

	"quality_server/adapter/out/messaging"
	"quality_server/adapter/out/netintel"
	"quality_server/adapter/out/patternstore"
	"quality_server/config"
	"quality_server/core/domain"
	"quality_server/core/port/out"
	"quality_server/core/service/pattern"
	"quality_server/core/service/sanitize"
	"quality_server/core/service/verify"
	"quality_server/infra/database"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies holds every wired component of the pipeline.
type Dependencies struct {
	Config *config.Config

	Redis   *redis.Client
	MongoDB *mongo.Client
	SQLDB   *sqlx.DB

	PatternStore  domain.PatternStore
	DeliveryIntel *netintel.DeliveryIntel
	DNSResolver   *netintel.DNSResolver

	Sanitizer *sanitize.Sanitizer
	Model     *pattern.Model
	Pipeline  *verify.Pipeline
	Verifier  *verify.BatchVerifier

	Publisher out.ResultPublisher
}

// NewDependencies wires adapters and services from config. The returned
// cleanup closes every open connection; call it on shutdown.
func NewDependencies(cfg *config.Config, zlog zerolog.Logger) (*Dependencies, func(), error) {
	deps := &Dependencies{Config: cfg}
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	// Redis carries the stream intake and result publishing; required.
	if cfg.RedisURL == "" {
		return nil, nil, fmt.Errorf("REDIS_URL is required")
	}
	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	cleanups = append(cleanups, func() { redisClient.Close() })
	deps.Redis = redisClient

	store, err := newPatternStore(cfg, deps, &cleanups)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	deps.PatternStore = store

	intel, err := netintel.NewDeliveryIntel(cfg.DeliveryIntelPath, zlog)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to open delivery intel: %w", err)
	}
	cleanups = append(cleanups, func() { intel.Close() })
	deps.DeliveryIntel = intel

	deps.DNSResolver = netintel.NewDNSResolver(&netintel.DNSResolverConfig{
		Timeout:           cfg.DNSTimeout,
		RequestsPerSecond: cfg.DNSRatePerSec,
	}, zlog)

	deps.Sanitizer = sanitize.NewSanitizer()
	deps.Model = pattern.NewModel(store, zlog)
	deps.Pipeline = verify.NewPipeline(verify.Adapters{
		ResolveMX:      deps.DNSResolver,
		DetectCatchAll: intel,
		SMTPProbe:      intel,
	}, zlog)
	deps.Verifier = verify.NewBatchVerifier(deps.Pipeline, &verify.BatchConfig{
		Workers:           cfg.VerifyWorkers,
		RequestsPerSecond: cfg.VerifyRatePerSec,
		Burst:             cfg.VerifyBurst,
	}, zlog)

	deps.Publisher = messaging.NewRedisProducer(redisClient)

	return deps, cleanup, nil
}

// newPatternStore selects the configured backend.
func newPatternStore(cfg *config.Config, deps *Dependencies, cleanups *[]func()) (domain.PatternStore, error) {
	switch cfg.PatternStoreBackend {
	case "file":
		return patternstore.NewFileStore(cfg.PatternStorePath), nil

	case "redis":
		return patternstore.NewRedisStore(deps.Redis), nil

	case "mongo":
		if cfg.MongoDBURL == "" {
			return nil, fmt.Errorf("MONGODB_URL is required for the mongo pattern store")
		}
		client, err := patternstore.NewMongoClient(cfg.MongoDBURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect mongodb: %w", err)
		}
		*cleanups = append(*cleanups, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			client.Disconnect(ctx)
		})
		deps.MongoDB = client
		return patternstore.NewMongoStore(client, cfg.MongoDBName), nil

	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres pattern store")
		}
		db, err := database.NewSQLX(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect postgres: %w", err)
		}
		*cleanups = append(*cleanups, func() { db.Close() })
		deps.SQLDB = db

		store := patternstore.NewPostgresStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, fmt.Errorf("failed to ensure pattern schema: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown pattern store backend %q", cfg.PatternStoreBackend)
	}
}
