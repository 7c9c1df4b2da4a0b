package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MrWinstonjie/go-whitted-raytracer/internal/logger"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/renderer"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "glass", "Scene: 'glass', 'default', 'mirror', or a .yaml scene file path")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	ior := flag.Float64("ior", scene.DefaultGlassIOR, "Glass index of refraction (glass scene only)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = number of CPUs)")
	outputDir := flag.String("output", "output", "Output directory")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  glass   - Glass sphere showcase with mirror and matte spheres over a ground plane")
		fmt.Println("  default - Single reflective red sphere and one light")
		fmt.Println("  mirror  - Two facing mirrors exercising the recursion depth cap")
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
		return
	}

	log := logger.New(*logLevel)

	selectedScene, err := scene.CreateScene(*sceneName, *ior)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	r := renderer.NewRenderer(selectedScene, *width, *height, renderer.Config{NumWorkers: *workers}, log)
	img, stats := r.Render()

	dir := filepath.Join(*outputDir, sceneLabel(*sceneName))
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(dir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Infof("Saved %s (%dx%d, %.1f%% hits, %v across %d workers)",
		filename, *width, *height, stats.HitRatio()*100, stats.RenderTime, stats.NumWorkers)
}

// sceneLabel derives an output directory name from a scene name: built-in
// names pass through, file paths reduce to the base name without extension
func sceneLabel(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
