package main

import (
	"context"
	"os"

	"github.com/miguelangelabou/globosanabell/internal/app"
	appconfig "github.com/miguelangelabou/globosanabell/internal/config"
	"github.com/miguelangelabou/globosanabell/migrations"
	"github.com/miguelangelabou/globosanabell/pkg/config"
	"github.com/miguelangelabou/globosanabell/pkg/logger"
)

func main() {
	cfg, err := config.Load[appconfig.Config]()
	if err != nil {
		logger.New("globosanabell", "error").Error("loading configuration", "error", err)
		os.Exit(1)
	}

	l := logger.New(cfg.ServiceName, cfg.LogLevel)

	ctx := context.Background()

	a, err := app.New(ctx, cfg, l, migrations.FS)
	if err != nil {
		l.Error("initializing application", "error", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		l.Error("server exited with error", "error", err)
		os.Exit(1)
	}

	l.Info("server stopped")
}
