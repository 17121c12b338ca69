package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"feed-composer/config"
	"feed-composer/consumer"
	"feed-composer/driver"
	"feed-composer/gateway"
	"feed-composer/logger"
	"feed-composer/usecase"
	appOtel "feed-composer/utils/otel"
)

// Run initializes all components and starts the service.
// It blocks until ctx is cancelled, then performs graceful shutdown.
func Run(ctx context.Context) error {
	// ── OpenTelemetry ──
	otelCfg := appOtel.ConfigFromEnv()
	otelShutdown, err := appOtel.InitProvider(ctx, otelCfg)
	if err != nil {
		fmt.Printf("Failed to initialize OpenTelemetry: %v\n", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	// ── Logger ──
	logger.InitWithOTel(otelCfg.Enabled)
	logger.Logger.Info("Starting feed-composer",
		"service", otelCfg.ServiceName,
		"otel_enabled", otelCfg.Enabled,
	)

	// ── Load config ──
	appCfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("Failed to load config", "err", err)
		return err
	}

	// ── Drivers (infrastructure layer) ──
	dbDriver, err := initDatabaseDriver(ctx, appCfg)
	if err != nil {
		logger.Logger.Error("Failed to initialize database driver", "err", err)
		return err
	}
	defer dbDriver.Close()

	msClient, err := initMeilisearchClient(ctx, appCfg)
	if err != nil {
		logger.Logger.Error("Failed to initialize Meilisearch", "err", err)
		return err
	}

	redisClient, err := initRedisClient(ctx, appCfg)
	if err != nil {
		logger.Logger.Error("Failed to initialize Redis", "err", err)
		return err
	}
	defer redisClient.Close()

	searchDriver := driver.NewLibrarySearchDriver(msClient, appCfg.Search.Index)
	scorerDriver := driver.NewScorerAPIDriver(appCfg.Scorer.BaseURL, appCfg.Scorer.Timeout)
	feedStoreDriver := driver.NewFeedStoreDriver(redisClient)

	// ── Gateways (anti-corruption layer) ──
	library := gateway.NewLibraryGateway(searchDriver)
	inventory := gateway.NewInventoryGateway(dbDriver)
	subscriptions := gateway.NewSubscriptionGateway(dbDriver)
	users := gateway.NewUserGateway(dbDriver)
	scorer := gateway.NewScorerGateway(scorerDriver)
	feedStore := gateway.NewFeedStoreGateway(feedStoreDriver)

	// ── Use cases (application layer) ──
	selector := usecase.NewSelectCandidatesUsecase(library, inventory, subscriptions)
	ranker := usecase.NewRankCandidatesUsecase(scorer)
	mixer := usecase.NewMixSectionsUsecase()
	refreshUsecase := usecase.NewRefreshFeedUsecase(users, selector, ranker, mixer, feedStore, logger.Logger)
	fetchUsecase := usecase.NewFetchFeedUsecase(feedStore)

	// ── Redis Streams consumer (job queue integration) ──
	var redisConsumer *consumer.Consumer
	consumerCfg := consumer.ConfigFromEnv()
	if consumerCfg.Enabled {
		eventHandler := consumer.NewRefreshEventHandler(refreshUsecase, logger.Logger)
		redisConsumer, err = consumer.NewConsumer(consumerCfg, eventHandler, logger.Logger)
		if err != nil {
			logger.Logger.Error("Failed to create Redis Streams consumer", "err", err)
		} else if err := redisConsumer.Start(ctx); err != nil {
			logger.Logger.Error("Failed to start Redis Streams consumer", "err", err)
		} else {
			logger.Logger.Info("Redis Streams consumer started",
				"stream", consumerCfg.StreamKey,
				"group", consumerCfg.GroupName,
			)
		}
	} else {
		logger.Logger.Info("Redis Streams consumer disabled")
	}

	// ── HTTP server ──
	e := newEchoServer(appCfg, refreshUsecase, fetchUsecase)

	go func() {
		logger.Logger.Info("http listen", "addr", appCfg.HTTP.Addr)
		if err := e.Start(appCfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error("http server", "err", err)
		}
	}()

	<-ctx.Done()

	// ── Graceful shutdown ──
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if redisConsumer != nil && redisConsumer.IsEnabled() {
		redisConsumer.Stop()
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("http shutdown", "err", err)
	}
	if err := otelShutdown(shutdownCtx); err != nil {
		logger.Logger.Error("otel shutdown", "err", err)
	}

	return nil
}
