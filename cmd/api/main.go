package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	_ "github.com/tdhftu/snapchat-ads-tools/docs"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/database/postgres"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/events"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/snapclient"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/migration"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/repository"
	"github.com/tdhftu/snapchat-ads-tools/internal/api"
	"github.com/tdhftu/snapchat-ads-tools/internal/api/handler"
	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/internal/scheduler"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

//	@title			Snapchat Ads Tools API
//	@version		1.0
//	@description	Bulk creation of Snapchat campaigns, ad squads and ads across ad accounts.

//	@BasePath					/
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	log.L.Infof("log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Up(ctx, pgConn); err != nil {
		log.L.WithError(err).Fatal("failed to apply migrations")
	}

	runRepo := repository.NewRunRepository(pgConn)

	tokenManager := snapclient.NewTokenManager(cfg)
	snapClient := snapclient.NewClient(cfg, tokenManager)
	snapIntegrator := snapchat.New(snapClient)

	catalogService := catalog.NewService(snapIntegrator)

	observers := []provisioning.Observer{provisioning.LogObserver{}}
	if cfg.Redis.Enabled() {
		redisClient, err := events.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			// status events are optional, runs still work without them
			log.L.WithError(err).Warn("redis unavailable, status events will not be published")
		} else {
			defer redisClient.Close()
			observers = append(observers, events.NewRedisPublisher(redisClient, cfg.Redis.StatusChannel))
		}
	}

	provisioningService := provisioning.NewService(ctx, snapIntegrator, snapIntegrator, runRepo, cfg, observers...)

	authenticator := authenticating.NewService(cfg)

	tokenRefreshService := scheduler.NewTokenRefreshService(snapIntegrator, cfg)
	if err := tokenRefreshService.Start(ctx); err != nil {
		log.L.WithError(err).Error("failed to start token refresh scheduler")
	} else {
		log.L.Info("token refresh scheduler started")
	}

	runRetentionService := scheduler.NewRunRetentionService(provisioningService, cfg)
	if err := runRetentionService.Start(ctx); err != nil {
		log.L.WithError(err).Error("failed to start run retention scheduler")
	} else {
		log.L.Info("run retention scheduler started")
	}

	server, err := api.New(
		cfg,
		authenticator,
		catalogService,
		snapIntegrator,
		provisioningService,
		handler.CronJobServices{
			TokenRefreshService: tokenRefreshService,
			RunRetentionService: runRetentionService,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	// runs still in flight when the shutdown timeout expires are cancelled
	// and their remaining accounts marked interrupted
	server.OnShutdown(func(shutdownCtx context.Context) error {
		if err := provisioningService.Shutdown(shutdownCtx); err != nil {
			cancel()
			return err
		}
		return nil
	})

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("server exited with error")
	}
}

func configureLogger() {
	if log.IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
		return
	}

	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to ping PostgreSQL")
	}

	log.L.Info("PostgreSQL connection established")
	return conn
}
