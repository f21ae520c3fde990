// Package app implements the main loop: poll input, update the scene,
// render, present, wait for the next frame.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cornellbox/internal/config"
	"github.com/Faultbox/cornellbox/internal/engine/camera"
	"github.com/Faultbox/cornellbox/internal/engine/debug"
	"github.com/Faultbox/cornellbox/internal/engine/input"
	"github.com/Faultbox/cornellbox/internal/engine/renderer"
	"github.com/Faultbox/cornellbox/internal/engine/window"
	"github.com/Faultbox/cornellbox/internal/logger"
	"github.com/Faultbox/cornellbox/internal/scene"
	"github.com/Faultbox/cornellbox/pkg/math"
)

// Title is the base window title.
const Title = "Cornell Box"

// selectionColor outlines the last toggled solid.
var selectionColor = math.Vec3{X: 1, Y: 1, Z: 1}

// App owns the window, renderer and scene.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.State
	shots    *debug.Screenshots
	pacer    *Pacer
}

// SceneOptions converts config values into scene options.
func SceneOptions(cfg *config.Config) (scene.Options, error) {
	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return scene.Options{}, err
	}
	return scene.Options{
		CameraMode:         mode,
		DragRotateScale:    cfg.Camera.DragRotateScale,
		DragPanScale:       cfg.Camera.DragPanScale,
		ScrollZoomScale:    cfg.Camera.ScrollZoomScale,
		MoveSpeed:          cfg.Camera.MoveSpeed,
		Animate:            cfg.Scene.Animate,
		MirrorWallsEnabled: cfg.Scene.MirrorWallsEnabled,
		ShowHUD:            cfg.Scene.ShowHUD,
	}, nil
}

// New creates the window and GPU resources and builds the scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		log:   logger.Named("app"),
		shots: debug.NewScreenshots(cfg.Scene.ScreenshotDir, "cornellbox"),
		pacer: NewPacer(cfg.Graphics.FPSLimit),
	}

	opts, err := SceneOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf("scene options: %w", err)
	}

	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context created by the window.
	dw, dh := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene = scene.New(opts)
	if err := a.renderer.UploadAll(a.scene.Entities()); err != nil {
		a.Close()
		return nil, fmt.Errorf("uploading meshes: %w", err)
	}

	a.input = input.New(a.pick)

	a.log.Info("app initialized",
		zap.Int("drawable_width", dw),
		zap.Int("drawable_height", dh),
		zap.Duration("frame", a.pacer.Step()),
		zap.Stringer("camera", opts.CameraMode),
	)
	return a, nil
}

// pick converts window coordinates to a solid name.
func (a *App) pick(x, y float32) string {
	w, h := a.window.GetSize()
	return a.scene.Pick(x, y, float32(w), float32(h))
}

// Run runs the frame loop until the scene or the window asks to quit.
func (a *App) Run() error {
	a.log.Info("starting frame loop")
	titleTimer := time.Now()
	lastFrame := time.Now()

	for a.scene.Running() {
		now := time.Now()
		a.scene.RecordFrame(float32(now.Sub(lastFrame).Seconds()))
		lastFrame = now

		if a.input.Update(a.scene) {
			a.scene.Quit()
			break
		}
		for _, e := range a.input.Events() {
			if e.Type == input.EventWindowResize {
				a.renderer.Resize(a.window.GetDrawableSize())
			}
		}

		a.scene.Update(a.pacer.DT())
		a.render()

		if a.scene.TakeScreenshotRequest() {
			a.screenshot()
		}

		a.window.SwapBuffers()

		if time.Since(titleTimer) >= time.Second {
			a.updateTitle()
			titleTimer = time.Now()
		}

		a.pacer.Wait()
	}

	a.log.Info("frame loop stopped")
	return nil
}

func (a *App) render() {
	w, h := a.renderer.Size()
	var aspect float32
	if h > 0 {
		aspect = float32(w) / float32(h)
	}

	frame := a.scene.Frame(aspect)
	a.renderer.Render(frame, a.scene.RenderList())

	if a.scene.HUDVisible() {
		if _, box, ok := a.scene.Selected(); ok {
			a.renderer.DrawBounds(frame, box, selectionColor)
		}
	}
}

func (a *App) updateTitle() {
	snap := a.scene.Snapshot()
	if !snap.HUDVisible {
		a.window.SetTitle(Title)
		return
	}
	a.window.SetTitle(Title + " | " + snap.Summary())
	a.log.Debug("frame stats",
		zap.Float32("fps", snap.FPS),
		zap.Stringer("camera", snap.CameraMode),
	)
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.shots.Save(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

// Close releases all resources.
func (a *App) Close() {
	a.log.Info("closing app")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
