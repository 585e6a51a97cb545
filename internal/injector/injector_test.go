package injector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spheres3d/internal/config"
	"spheres3d/internal/input"
	"spheres3d/internal/render"
)

func TestInitializeApp(t *testing.T) {
	a, cleanup, err := InitializeApp(config.Default())
	require.NoError(t, err)
	defer cleanup()

	rec := render.NewRecorder(0)
	f := a.Step(input.NewState(), rec)
	require.True(t, f.Colliding)
	require.Equal(t, 1046, rec.Len())
}

func TestInitializeAppInvalidLogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "chatty"
	_, _, err := InitializeApp(cfg)
	require.Error(t, err)
}
