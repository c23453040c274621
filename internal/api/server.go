package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/tdhftu/snapchat-ads-tools/internal/api/handler"
	"github.com/tdhftu/snapchat-ads-tools/internal/api/handler/router"
	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/internal/web"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
	"github.com/tdhftu/snapchat-ads-tools/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	onShutdown []func(ctx context.Context) error
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	catalogService catalog.CatalogService,
	platform provisioning.Platform,
	provisioningService provisioning.ProvisioningService,
	cronServices handler.CronJobServices,
) (*Server, error) {
	pages := web.NewPages(authenticator, catalogService, provisioningService)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Snapchat(catalogService, platform)...),
		router.WithRoutes(handler.Provisioning(provisioningService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithRoutes(handler.Swagger()...),
		router.WithRoutes(handler.Pages(pages)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// OnShutdown registers cleanup that runs after the HTTP server stopped accepting requests
func (s *Server) OnShutdown(fn func(ctx context.Context) error) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("interrupt signal received")
	case <-ctx.Done():
		log.L.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server shutdown failed")
		return err
	}

	log.L.Info("server stopped")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	log.L.Info("HTTP server stopped")

	for _, fn := range s.onShutdown {
		if err := fn(ctx); err != nil {
			return err
		}
	}
	return nil
}
