//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"spheres3d/internal/app"
	"spheres3d/internal/config"
)

func InitializeApp(cfg *config.Config) (*app.App, func(), error) {
	wire.Build(app.NewLogger, app.NewScene, app.NewController, app.NewWatcher, app.New)
	return nil, nil, nil
}
