// Package main Shunt Calc API
// @title Shunt Calc API
// @version 1.0
// @description Integer arithmetic evaluator: lexer, shunting-yard reducer and postfix evaluator over HTTP
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	_ "github.com/DjordjeVuckovic/shunt-calc/internal/docs"
	"github.com/DjordjeVuckovic/shunt-calc/internal/router"
	"github.com/DjordjeVuckovic/shunt-calc/internal/server"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/shunt-calc/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	var routerOpts []router.CalcRouterOption
	var store *factory.Storage
	if cfg.RecordEvaluations {
		store, err = factory.NewStorer(context.Background(), &cfg.StorageConfig)
		if err != nil {
			slog.Error("Failed to create storage", "type", cfg.StorageConfig.Type, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		routerOpts = append(routerOpts, router.WithRecorder(store.Storer))
		slog.Info("Recording evaluations", "storage", cfg.StorageConfig.Type)
	} else {
		slog.Info("Evaluation recording disabled")
	}

	var healthChecker pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	if store != nil {
		healthChecker = store.Health
	}

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks(server.DefaultHealthPath).
		SetupOpenApi(server.DefaultOpenApiPath)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Shunt Calc API is running")
	})

	calculator := calc.New(cfg.Calc.Options()...)
	router.NewCalcRouter(s.Echo, calculator, routerOpts...).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
