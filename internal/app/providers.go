package app

import (
	"fmt"

	"go.uber.org/zap"

	"spheres3d/internal/config"
	"spheres3d/internal/input"
	"spheres3d/internal/log"
	"spheres3d/internal/scene"
)

// NewLogger builds the logger configured in cfg. The cleanup flushes it.
func NewLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := log.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// NewScene builds the initial scene from cfg.
func NewScene(cfg *config.Config) (*scene.Scene, error) {
	sc := cfg.Scene()
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return sc, nil
}

// NewController builds the camera controller from cfg.
func NewController(cfg *config.Config) *input.Controller {
	return input.NewController(cfg.Camera.MoveSpeed, cfg.Camera.LookSpeed)
}

// NewWatcher watches the config file when watching is enabled and the
// config came from a file. It returns a nil Watcher otherwise.
func NewWatcher(cfg *config.Config, logger *zap.Logger) (Watcher, func(), error) {
	if !cfg.Watch || cfg.Path == "" {
		return nil, func() {}, nil
	}
	w, err := config.NewWatcher(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("watching scene file", zap.String("path", w.Path()))
	return w, func() { _ = w.Close() }, nil
}
