// Package main is the interactive viewer: it renders a scene description
// with one lit cube per drawable node and an orbit camera.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenegraph/internal/camera"
	"github.com/Faultbox/scenegraph/internal/config"
	"github.com/Faultbox/scenegraph/internal/engine/gldraw"
	"github.com/Faultbox/scenegraph/internal/engine/input"
	"github.com/Faultbox/scenegraph/internal/engine/renderer"
	"github.com/Faultbox/scenegraph/internal/engine/window"
	"github.com/Faultbox/scenegraph/internal/logger"
	"github.com/Faultbox/scenegraph/internal/scenefile"
	"github.com/Faultbox/scenegraph/internal/scenegraph"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Fatal("viewer failed", zap.Error(err))
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	file, err := scenefile.Load(cfg.Scene.Path)
	if err != nil {
		return err
	}

	win, err := window.New(cfg.Window)
	if err != nil {
		return err
	}
	defer win.Close()

	width, height := win.GetSize()
	ren, err := renderer.New(width, height)
	if err != nil {
		return err
	}

	program, err := gldraw.NewProgram()
	if err != nil {
		return err
	}
	defer program.Release()

	var cubes []*gldraw.Cube
	defer func() {
		for _, c := range cubes {
			c.Release()
		}
	}()

	scene, err := file.Build(func(name string) (scenegraph.Drawable, error) {
		c, err := gldraw.NewCube(program, gldraw.ColorFor(name))
		if err != nil {
			return nil, err
		}
		cubes = append(cubes, c)
		return c, nil
	})
	if err != nil {
		return err
	}
	logger.Info("scene loaded",
		zap.String("name", scene.Name),
		zap.Int("nodes", scene.Count()),
		zap.Int("cubes", len(cubes)),
	)
	win.SetTitle(fmt.Sprintf("%s - %s", cfg.Window.Title, scene.Name))

	cam := camera.FromConfig(cfg.Camera)
	in := input.New()

	for !in.Update() {
		for _, e := range in.Events() {
			switch e.Type {
			case input.EventDrag:
				cam.HandleDrag(e.DX, e.DY)
			case input.EventZoom:
				cam.HandleZoom(e.DY)
			case input.EventWindowResize:
				ren.Resize(win.GetSize())
			case input.EventKeyDown:
				cam = handleKey(cam, cfg.Camera, e.Key)
			}
		}

		ren.Begin()
		seeds := cam.Seeds(ren.Aspect())
		if err := scene.Draw(seeds.ViewProjection, seeds.ModelView, seeds.Normal, seeds.Model); err != nil {
			return err
		}
		if err := ren.End(); err != nil {
			return err
		}
		win.SwapBuffers()
	}
	return nil
}

// handleKey applies viewer key bindings: R resets the camera to its
// configured pose, N toggles the inverse-transpose normal seed.
func handleKey(cam *camera.OrbitCamera, cfg config.CameraConfig, key sdl.Scancode) *camera.OrbitCamera {
	switch key {
	case sdl.SCANCODE_R:
		normal := cam.InverseTransposeNormal
		cam = camera.FromConfig(cfg)
		cam.InverseTransposeNormal = normal
		logger.Sugar.Debugf("camera reset to distance %.2f", cam.Distance)
	case sdl.SCANCODE_N:
		cam.InverseTransposeNormal = !cam.InverseTransposeNormal
		logger.Sugar.Infof("inverse-transpose normal seed: %v", cam.InverseTransposeNormal)
	}
	return cam
}
