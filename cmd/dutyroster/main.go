package main

import (
	"log/slog"
	"os"

	"github.com/dutyroster/engine/adapter/cli"
	"github.com/dutyroster/engine/adapter/cli/roster"
	"github.com/dutyroster/engine/internal/roster/settings"
	"github.com/dutyroster/engine/pkg/config"
	"github.com/dutyroster/engine/pkg/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		fallback.Warn("failed to load config, using development defaults", "error", err)
		cfg = &config.Config{AppEnv: "development", LogLevel: "info", Settings: settings.Default()}
	}

	logCfg := observability.DefaultLogConfig()
	if !cfg.IsDevelopment() {
		logCfg = observability.ProductionLogConfig()
	}
	logCfg.Level = observability.LogLevel(cfg.LogLevel)

	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	roster.SetDefaults(cfg.Settings, cfg.Settings)

	cli.AddCommand(roster.Cmd)
	cli.Execute()
}
