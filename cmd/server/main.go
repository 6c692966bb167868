package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jaiswalarts/artshop/internal/config"
	"github.com/jaiswalarts/artshop/internal/events"
	"github.com/jaiswalarts/artshop/internal/httpserver"
	"github.com/jaiswalarts/artshop/internal/models"
	"github.com/jaiswalarts/artshop/internal/payment"
	"github.com/jaiswalarts/artshop/internal/repo"
	"github.com/jaiswalarts/artshop/internal/search"
	"github.com/jaiswalarts/artshop/internal/service"
	"github.com/jaiswalarts/artshop/internal/uploads"
	pkgdb "github.com/jaiswalarts/artshop/pkg/db"
	"github.com/jaiswalarts/artshop/pkg/logging"
	middleware "github.com/jaiswalarts/artshop/pkg/middleware/auth"
	"github.com/jaiswalarts/artshop/pkg/tokens"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	if err == nil {
		err = pkgdb.Migrate(ctx, db, models.All()...)
	}
	cancel()
	if err != nil {
		logger.Error("db_init_failed", "error", err)
		os.Exit(1)
	}

	store, err := uploads.NewDiskStore(cfg.UploadDir)
	if err != nil {
		logger.Error("upload_dir_failed", "dir", cfg.UploadDir, "error", err)
		os.Exit(1)
	}

	publisher := events.New(cfg.KafkaBrokers)
	index := newSearchIndex(cfg, logger)

	var gateway payment.Gateway = payment.Disabled{}
	if cfg.PaymentsEnabled() {
		gateway = payment.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	} else {
		logger.Warn("payments_disabled", "reason", "RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET not set")
	}

	r := repo.New(db)
	e := httpserver.New(&httpserver.Deps{
		Logger:    logger,
		UploadDir: cfg.UploadDir,
		Accounts: &httpserver.AccountsHTTP{Svc: &service.AccountService{
			Repo:   r,
			Tokens: tokens.NewIssuer(cfg.JWTSecret, tokens.DefaultTTL),
			Events: publisher,
		}},
		Catalog: &httpserver.CatalogHTTP{Svc: &service.CatalogService{
			Repo:   r,
			Images: store,
			Index:  index,
			Events: publisher,
		}},
		Payments: &httpserver.PaymentHTTP{Svc: &service.PaymentService{Gateway: gateway}},
		Auth:     middleware.NewBearerAuth(cfg.JWTSecret),
		Ready:    func(ctx context.Context) error { return pkgdb.Ping(ctx, db) },
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting_down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_shutdown_failed", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("kafka_close_failed", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db_close_failed", "error", err)
	}

	logger.Info("shutdown_complete")
}

// newSearchIndex returns the Elasticsearch mirror, or Nop when ES_URL is
// unset or the cluster cannot be reached at startup.
func newSearchIndex(cfg *config.Config, logger *slog.Logger) search.Index {
	if cfg.ESURL == "" {
		return search.Nop{}
	}
	idx, err := search.NewESIndex(search.Config{
		URL:      cfg.ESURL,
		User:     cfg.ESUser,
		Password: cfg.ESPassword,
		Index:    cfg.ESIndex,
	})
	if err != nil {
		logger.Warn("search_index_disabled", "error", err)
		return search.Nop{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := idx.Ping(ctx); err != nil {
		logger.Warn("search_index_disabled", "url", cfg.ESURL, "error", err)
		return search.Nop{}
	}
	return idx
}
