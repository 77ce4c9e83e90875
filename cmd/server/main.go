// Command server wires configuration, storage, the two per-stream Brains,
// the scraper, the optional external ranker, and the HTTP façade together
// and runs the periodic refresh cycle.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tirage90/predictor/config"
	"github.com/tirage90/predictor/internal/brain"
	"github.com/tirage90/predictor/internal/engine"
	"github.com/tirage90/predictor/internal/history"
	"github.com/tirage90/predictor/internal/httpapi"
	"github.com/tirage90/predictor/internal/mlfeature"
	"github.com/tirage90/predictor/internal/scheduler"
	"github.com/tirage90/predictor/internal/scrape"
	"github.com/tirage90/predictor/internal/store"
	"github.com/tirage90/predictor/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := log.Logger

	db, err := store.New(store.ConnectionParams{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	drawStore := store.NewDrawStore(db, logger)

	winningBrain := brain.New("winning", drawStore, logger)
	machineBrain := brain.New("machine", drawStore, logger)

	historyLog := history.NewFileLog("prediction_history.json")

	httpClient := transport.New(transport.Options{
		Timeout:        time.Duration(cfg.ScrapeTimeoutSec) * time.Second,
		RequestsPerSec: cfg.ScrapeRPS,
	})
	scraper := scrape.New(httpClient, cfg.ScrapeBaseURL, logger)

	var ranker mlfeature.Ranker = mlfeature.NoopRanker{}
	switch {
	case cfg.OpenAIAPIKey != "":
		ranker = mlfeature.NewOpenAIRanker(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
	case cfg.MLFeatureURL != "":
		mlClient := transport.New(transport.Options{
			Timeout: time.Duration(cfg.MLFeatureTimeoutSec) * time.Second,
		})
		ranker = mlfeature.NewHTTPRanker(mlClient, cfg.MLFeatureURL, logger)
	}

	drawTypes := drawStore.GetDrawTypes()
	drawTypeIDs := make([]int, len(drawTypes))
	for i, dt := range drawTypes {
		drawTypeIDs[i] = dt.ID
	}

	eng := engine.New(engine.Dependencies{
		Draws:       drawStore,
		Winning:     winningBrain,
		Machine:     machineBrain,
		History:     historyLog,
		Ranker:      ranker,
		Scraper:     scraper,
		DrawTypeIDs: drawTypeIDs,
		Log:         logger,
	})

	sched := scheduler.New(logger)
	if cfg.RefreshIntervalMinutes > 0 {
		job := scheduler.NewRefreshJob(func(forceTrain bool) error {
			_, err := eng.Refresh(forceTrain)
			return err
		})
		schedule := fmt.Sprintf("@every %dm", cfg.RefreshIntervalMinutes)
		if err := sched.AddJob(schedule, job); err != nil {
			log.Fatal().Err(err).Msg("failed to register refresh job")
		}
		sched.Start()
		defer sched.Stop()
	}

	srv := httpapi.New(httpapi.Config{
		Port:   cfg.Port,
		Log:    logger,
		Engine: eng,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during http server shutdown")
	}
}
