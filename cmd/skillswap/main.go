package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/localhood/skillswap/internal/adapters/notify"
	"github.com/localhood/skillswap/internal/adapters/repository"
	app "github.com/localhood/skillswap/internal/app"
	"github.com/localhood/skillswap/internal/config"
	"github.com/localhood/skillswap/internal/domain/matching"
	"github.com/localhood/skillswap/internal/domain/model"
	"github.com/localhood/skillswap/internal/fixtures"
	"github.com/localhood/skillswap/pkg/logger"
	"github.com/localhood/skillswap/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Decode the embedded seed data
	seed, err := fixtures.Load()
	if err != nil {
		log.Error(ctx, "failed to load fixtures", logger.Error(err))
		return
	}

	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithStores(buildStores(cfg, seed)),
		app.WithScorer(matching.NewStaticScorer(
			matching.WithScore(cfg.MatchScore),
			matching.WithLatencyRange(
				time.Duration(cfg.WriteLatencyMinMS)*time.Millisecond,
				time.Duration(cfg.WriteLatencyMaxMS)*time.Millisecond,
			),
		)),
		app.WithNotifier(notify.NewInMemoryNotifier(notify.WithCapacity(cfg.NoticeQueueSize))),
		app.WithCurrentUser(cfg.CurrentUserID),
		app.WithMatchedUser(cfg.MatchedUserID),
		app.WithViewCacheTTL(time.Duration(cfg.ViewCacheTTLMS)*time.Millisecond),
	)
	if err := svc.Start(ctx); err != nil {
		log.Error(ctx, "failed to start service", logger.Error(err))
		return
	}
	defer svc.Stop()

	// Drain notices into the log; a real front end would render these.
	go drainNotices(ctx, svc, log.Named("notices"))

	// Observability mux: health and metrics only. The domain API is
	// in-process and has no network surface.
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting observability HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "stopped")
}

// buildStores seeds the six entity stores with the configured latency
// windows. The message store gets the faster chat window for sends.
func buildStores(cfg *config.Config, seed fixtures.Data) repository.Stores {
	readMin := time.Duration(cfg.ReadLatencyMinMS) * time.Millisecond
	readMax := time.Duration(cfg.ReadLatencyMaxMS) * time.Millisecond
	writeMin := time.Duration(cfg.WriteLatencyMinMS) * time.Millisecond
	writeMax := time.Duration(cfg.WriteLatencyMaxMS) * time.Millisecond
	messageWrite := time.Duration(cfg.MessageWriteLatencyMS) * time.Millisecond

	return repository.Stores{
		Users: repository.NewUserStore(seed.Users,
			repository.WithReadLatency[model.User](readMin, readMax),
			repository.WithWriteLatency[model.User](writeMin, writeMax)),
		Skills: repository.NewSkillStore(seed.Skills,
			repository.WithReadLatency[model.Skill](readMin, readMax),
			repository.WithWriteLatency[model.Skill](writeMin, writeMax)),
		Matches: repository.NewMatchStore(seed.Matches,
			repository.WithReadLatency[model.Match](readMin, readMax),
			repository.WithWriteLatency[model.Match](writeMin, writeMax)),
		Sessions: repository.NewSessionStore(seed.Sessions,
			repository.WithReadLatency[model.Session](readMin, readMax),
			repository.WithWriteLatency[model.Session](writeMin, writeMax)),
		Messages: repository.NewMessageStore(seed.Messages,
			repository.WithReadLatency[model.Message](readMin, readMax),
			repository.WithWriteLatency[model.Message](messageWrite, messageWrite)),
		Ratings: repository.NewRatingStore(seed.Ratings,
			repository.WithReadLatency[model.Rating](readMin, readMax),
			repository.WithWriteLatency[model.Rating](writeMin, writeMax)),
	}
}

// drainNotices logs every published notice until shutdown.
func drainNotices(ctx context.Context, svc *app.Service, log logger.Logger) {
	for notice := range svc.Notices(ctx) {
		log.Info(ctx, notice.Text, logger.String("level", string(notice.Level)))
	}
}
