// Package main is a headless tool that loads a scene description, traverses
// it once with the configured camera and prints the resulting draw calls.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/scenegraph/internal/camera"
	"github.com/Faultbox/scenegraph/internal/config"
	"github.com/Faultbox/scenegraph/internal/drawable"
	"github.com/Faultbox/scenegraph/internal/logger"
	"github.com/Faultbox/scenegraph/internal/scenefile"
	"github.com/Faultbox/scenegraph/internal/scenegraph"
)

var flagVerbose = flag.Bool("verbose", false, "Dump every matrix of every draw call")

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

	if err := run(os.Stdout, cfg, *flagVerbose); err != nil {
		logger.Error("scene dump failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *config.Config, verbose bool) error {
	file, err := scenefile.Load(cfg.Scene.Path)
	if err != nil {
		return err
	}

	rec := drawable.NewRecorder()
	log := logger.Named("draw")
	scene, err := file.Build(func(name string) (scenegraph.Drawable, error) {
		return drawable.Logged(name, rec.Payload(name), log), nil
	})
	if err != nil {
		return err
	}
	logger.Info("scene loaded",
		zap.String("path", cfg.Scene.Path),
		zap.String("name", scene.Name),
		zap.Int("nodes", scene.Count()),
	)

	seeds := camera.FromConfig(cfg.Camera).Seeds(cfg.Aspect())
	if err := scene.Draw(seeds.ViewProjection, seeds.ModelView, seeds.Normal, seeds.Model); err != nil {
		return err
	}
	if len(rec.Calls()) == 0 {
		logger.Warn("scene has no drawable nodes",
			zap.String("path", cfg.Scene.Path),
			zap.Int("roots", len(scene.Roots)),
		)
	}

	writeOutline(w, scene)
	writeCalls(w, rec.Calls())
	if verbose {
		fmt.Fprintln(w, drawable.Dump(rec.Calls()))
	}
	return nil
}

func writeOutline(w io.Writer, scene *scenefile.Scene) {
	names := make(map[*scenegraph.Node]string, len(scene.Nodes))
	for name, n := range scene.Nodes {
		names[n] = name
	}

	fmt.Fprintf(w, "scene %q\n", scene.Name)
	for _, root := range scene.Roots {
		root.Walk(func(n *scenegraph.Node, depth int) bool {
			marker := ""
			if n.Payload() == nil {
				marker = " (group)"
			}
			fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth+1), names[n], marker)
			return true
		})
	}
}

func writeCalls(w io.Writer, calls []drawable.Call) {
	fmt.Fprintf(w, "%d draw calls\n", len(calls))
	for i, c := range calls {
		p := c.Model.Translation()
		fmt.Fprintf(w, "%3d %-16s world=(%.3f, %.3f, %.3f)\n", i, c.Name, p.X, p.Y, p.Z)
	}
}
