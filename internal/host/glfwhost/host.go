// Package glfwhost runs the demo in a GLFW window with an OpenGL 4.1 core
// context. The calling goroutine must be locked to the main OS thread.
package glfwhost

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"spheres3d/internal/app"
	"spheres3d/internal/config"
	"spheres3d/internal/input"
	"spheres3d/internal/render"
)

var keyMap = map[input.Key]glfw.Key{
	input.KeyW:      glfw.KeyW,
	input.KeyS:      glfw.KeyS,
	input.KeyA:      glfw.KeyA,
	input.KeyD:      glfw.KeyD,
	input.KeyQ:      glfw.KeyQ,
	input.KeyE:      glfw.KeyE,
	input.KeyEscape: glfw.KeyEscape,
}

var buttonMap = map[input.MouseButton]glfw.MouseButton{
	input.MouseButtonLeft:   glfw.MouseButtonLeft,
	input.MouseButtonRight:  glfw.MouseButtonRight,
	input.MouseButtonMiddle: glfw.MouseButtonMiddle,
}

// Run opens the window and drives a until Escape is pressed or the window
// is closed.
func Run(a *app.App, cfg config.Window) error {
	logger := a.Logger()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}
	logger.Info("window opened",
		zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	batch, err := newLineBatch()
	if err != nil {
		return err
	}
	defer batch.delete()

	bg := render.Color(cfg.Background).Floats()
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])

	lastFpsTime := glfw.GetTime()
	frameCount := 0
	colliding := false

	for !window.ShouldClose() {
		frame := a.Update(pollInput(window))
		if frame.Quit {
			break
		}
		colliding = frame.Colliding

		currentTime := glfw.GetTime()
		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | colliding: %t", cfg.Title, frameCount, colliding))
			frameCount = 0
			lastFpsTime = currentTime
		}

		fbWidth, fbHeight := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		a.Render(batch)
		batch.flush(cfg.Width, cfg.Height)

		window.SwapBuffers()
		glfw.PollEvents()
	}

	logger.Info("window closed", zap.Uint64("frames", a.Frames()))
	return nil
}

func pollInput(window *glfw.Window) input.State {
	s := input.NewState()
	for k, gk := range keyMap {
		s.Keys[k] = window.GetKey(gk) == glfw.Press
	}
	for b, gb := range buttonMap {
		s.Buttons[b] = window.GetMouseButton(gb) == glfw.Press
	}
	x, y := window.GetCursorPos()
	s.MouseX, s.MouseY = int(x), int(y)
	return s
}
