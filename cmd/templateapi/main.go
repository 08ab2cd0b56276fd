// Command templateapi runs the template/user HTTP API.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillsenselab/templateapi/auth"
	"github.com/skillsenselab/templateapi/config"
	"github.com/skillsenselab/templateapi/handler"
	"github.com/skillsenselab/templateapi/logger"
	"github.com/skillsenselab/templateapi/observability"
	"github.com/skillsenselab/templateapi/response"
	"github.com/skillsenselab/templateapi/server"
	"github.com/skillsenselab/templateapi/service/template"
	"github.com/skillsenselab/templateapi/service/user"
	"github.com/skillsenselab/templateapi/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.GetGlobalLogger().Fatal("failed to load config", logger.ErrorFields("config.load", err))
	}

	logger.Init(cfg.Logging, cfg.Name)
	log := logger.GetGlobalLogger()

	response.SetExposure(cfg.Errors)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownObs, err := observability.Init(ctx, cfg.Tracing, version.Get().Version)
	if err != nil {
		log.Fatal("failed to initialize observability", logger.ErrorFields("observability.init", err))
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware(cfg.Tracing.Metrics)
	srv.RegisterDefaultEndpoints(cfg.Name)

	api := srv.Engine().Group("/api/v1")
	if cfg.Auth.Enabled {
		api.Use(auth.RequireAuth(cfg.Auth))
	}
	handler.NewTemplateHandler(template.NewService(), log).Register(api)
	handler.NewUserHandler(user.NewService(), log).Register(api)

	if err := srv.Start(ctx); err != nil {
		log.Fatal("failed to start server", logger.ErrorFields("server.start", err))
	}
	log.Info("service ready", logger.Fields(
		"addr", srv.Addr(),
		"environment", cfg.Environment,
		"version", version.Get().Version,
	))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("server shutdown failed", logger.ErrorFields("server.stop", err))
	}
	if err := shutdownObs(shutdownCtx); err != nil {
		log.Error("observability shutdown failed", logger.ErrorFields("observability.stop", err))
	}
	log.Info("service stopped")
}
