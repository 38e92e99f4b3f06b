package bootstrap

import (
	"context"
	"time"

	"quality_server/adapter/in/worker"
	"quality_server/config"
	"quality_server/core/service/sanitize"
	"quality_server/core/service/verify"
	"quality_server/internal/stream"
	"quality_server/pkg/logger"

	"github.com/rs/zerolog"
)

// Worker ties the stream intake to the contact pipeline.
type Worker struct {
	consumer *stream.Consumer
	deps     *Dependencies
	ctx      context.Context
	cancel   context.CancelFunc
	zlog     zerolog.Logger
}

// NewWorker builds the full pipeline from config.
func NewWorker(cfg *config.Config) (*Worker, func(), error) {
	zlog := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Service: "quality-worker",
		Pretty:  cfg.LogPretty,
	})

	deps, cleanup, err := NewDependencies(cfg, zlog)
	if err != nil {
		return nil, nil, err
	}

	verifyOpts := verify.Options{
		DomainTTL: cfg.DomainCacheTTL,
		EmailTTL:  cfg.EmailCacheTTL,
	}

	contactProcessor := worker.NewContactProcessor(
		deps.Sanitizer,
		deps.Model,
		deps.Verifier,
		deps.Publisher,
		&worker.ContactProcessorConfig{
			Sanitize: sanitize.Options{
				PreferUSPhones:         cfg.PreferUSPhones,
				DeprioritizeRoleEmails: cfg.DeprioritizeRoleEmails,
			},
			Verify:     verifyOpts,
			PatternTTL: cfg.PatternTTL,
			GuessLimit: cfg.GuessLimit,
		},
		zlog,
	)
	verifyProcessor := worker.NewVerifyProcessor(deps.Verifier, deps.Publisher, verifyOpts, zlog)
	handler := worker.NewHandler(contactProcessor, verifyProcessor, zlog)

	redisStream := stream.NewRedisStream(deps.Redis, "quality-workers").
		WithReadOptions(int64(cfg.ConsumerBatchSize), time.Duration(cfg.ConsumerBlockMS)*time.Millisecond)
	consumer := stream.NewConsumer(redisStream, handler, cfg.WorkerID)

	ctx, cancel := context.WithCancel(context.Background())

	w := &Worker{
		consumer: consumer,
		deps:     deps,
		ctx:      ctx,
		cancel:   cancel,
		zlog:     zlog,
	}
	return w, cleanup, nil
}

// Start launches the stream consumers. Non-blocking.
func (w *Worker) Start() {
	w.zlog.Info().
		Str("backend", w.deps.Config.PatternStoreBackend).
		Str("worker_id", w.deps.Config.WorkerID).
		Msg("worker started")
	w.consumer.Start(w.ctx)
}

// Shutdown stops consuming and lets in-flight handlers drain.
func (w *Worker) Shutdown() {
	w.zlog.Info().Msg("worker shutting down")
	w.cancel()
}

// Logger exposes the root logger for main.
func (w *Worker) Logger() zerolog.Logger {
	return w.zlog
}
