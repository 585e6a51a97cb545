package app

import (
	"go.uber.org/zap"

	"spheres3d/internal/config"
	"spheres3d/internal/input"
	"spheres3d/internal/log"
	"spheres3d/internal/render"
	"spheres3d/internal/scene"
)

// Watcher delivers reloaded configs. Poll must not block.
type Watcher interface {
	Poll() (*config.Config, error)
}

// Frame is the outcome of one update.
type Frame struct {
	Quit      bool
	Colliding bool
}

// App runs the per-frame sequence: input, camera mutation, sphere edits,
// collision test, then drawing. It is not safe for concurrent use.
type App struct {
	logger     *zap.Logger
	scene      *scene.Scene
	controller *input.Controller
	watcher    Watcher

	colliding bool
	frames    uint64
}

// New assembles an App. watcher may be nil.
func New(logger *zap.Logger, sc *scene.Scene, controller *input.Controller, watcher Watcher) *App {
	return &App{
		logger:     logger,
		scene:      sc,
		controller: controller,
		watcher:    watcher,
		colliding:  sc.Colliding(),
	}
}

// Scene exposes the live state, for hosts that display it.
func (a *App) Scene() *scene.Scene {
	return a.scene
}

// Logger returns the app logger so hosts log through the same sink.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Frames returns how many updates have run.
func (a *App) Frames() uint64 {
	return a.frames
}

// Update applies one frame of input and recomputes the collision state.
func (a *App) Update(in input.State) Frame {
	a.frames++
	quit := a.controller.Apply(&a.scene.Camera, in)
	a.applyEdits()

	colliding := a.scene.Colliding()
	if colliding != a.colliding {
		a.logger.Debug("collision changed", zap.Bool("colliding", colliding), zap.Uint64("frame", a.frames))
	}
	a.colliding = colliding

	return Frame{Quit: quit, Colliding: colliding}
}

// Render rebuilds the matrices from the current state and draws the frame.
func (a *App) Render(out render.LineDrawer) {
	r := render.NewRenderer(a.scene.ViewProjection(), a.scene.ViewportMatrix(), out)
	r.DrawScene(a.scene, a.colliding)
}

// Step runs Update then Render.
func (a *App) Step(in input.State, out render.LineDrawer) Frame {
	f := a.Update(in)
	a.Render(out)
	return f
}

func (a *App) applyEdits() {
	if a.watcher == nil {
		return
	}
	cfg, err := a.watcher.Poll()
	if err != nil {
		a.logger.Warn("scene edit rejected", zap.Error(err))
		return
	}
	if cfg == nil {
		return
	}
	if err := a.scene.SetSpheres(cfg.Spheres.A, cfg.Spheres.B); err != nil {
		a.logger.Warn("scene edit rejected", zap.Error(err))
		return
	}
	a.logger.Info("spheres updated",
		log.Vector("a.center", cfg.Spheres.A.Center.X, cfg.Spheres.A.Center.Y, cfg.Spheres.A.Center.Z),
		zap.Float32("a.radius", cfg.Spheres.A.Radius),
		log.Vector("b.center", cfg.Spheres.B.Center.X, cfg.Spheres.B.Center.Y, cfg.Spheres.B.Center.Z),
		zap.Float32("b.radius", cfg.Spheres.B.Radius),
	)
}
