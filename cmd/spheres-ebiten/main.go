package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"spheres3d/internal/config"
	"spheres3d/internal/host/ebitenhost"
	"spheres3d/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "Scene config file (YAML); built-in defaults when empty")
	logLevel := flag.String("log-level", "", "Override the configured log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln("failed to load config:", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	a, cleanup, err := injector.InitializeApp(cfg)
	if err != nil {
		log.Fatalln("failed to start:", err)
	}

	if err := ebitenhost.Run(a, cfg.Window); err != nil {
		a.Logger().Error("game loop failed", zap.Error(err))
		cleanup()
		os.Exit(1)
	}
	cleanup()
}
