package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"voiceorder-service/internal/catalog"
	"voiceorder-service/internal/config"
	"voiceorder-service/internal/ordering/service"
	"voiceorder-service/internal/orders"
	serverhttp "voiceorder-service/server/http"
)

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	store, err := catalog.OpenStore(cfg.CatalogPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("catalog")
	}
	st := store.Snapshot().Stats()
	logger.Info().
		Str("path", cfg.CatalogPath).
		Int("sections", st.Sections).
		Int("entries", st.Entries).
		Int("aliases", st.Aliases).
		Int("duplicates", st.Duplicates).
		Int("skipped", st.SkippedRecords).
		Msg("catalog loaded")

	ctx := context.Background()
	repo, err := orders.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("orders db")
	}
	defer repo.Close()

	engine := service.NewEngine(store, service.Options{
		Threshold: cfg.MatchThreshold,
		Suggest:   cfg.SuggestLimit,
	}, logger)
	placer := orders.NewService(engine, repo, logger)

	r := serverhttp.NewRouter(cfg, logger, serverhttp.Deps{
		Catalog: store,
		Pricer:  engine,
		Orders:  placer,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// SIGHUP перечитывает меню, SIGINT/SIGTERM останавливают сервер
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	for s := range sig {
		if s != syscall.SIGHUP {
			break
		}
		if st, err := store.Reload(); err != nil {
			logger.Error().Err(err).Msg("catalog reload, keeping previous")
		} else {
			logger.Info().Int("entries", st.Entries).Int("aliases", st.Aliases).Msg("catalog reloaded")
		}
	}

	logger.Info().Msg("server shutting down")
	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shCtx)
	logger.Info().Msg("bye")
}
