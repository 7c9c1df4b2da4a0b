package renderer

import (
	"image"
	"time"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
)

// Config contains render orchestration settings
type Config struct {
	TileSize   int // Tile edge length in pixels, 0 = default
	NumWorkers int // 0 = auto-detect from CPU count
}

// DefaultTileSize is the tile edge length used when Config leaves it unset
const DefaultTileSize = 64

// Renderer runs one full deterministic pixel sweep across a worker pool.
// The scene is read-only for the duration of a render; parameter changes
// (such as the glass index of refraction) rebuild the scene and render again.
type Renderer struct {
	scene  Scene
	width  int
	height int
	config Config
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene and image size
func NewRenderer(scene Scene, width, height int, config Config, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultTileSize
	}
	return &Renderer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// Render traces one primary ray per pixel in parallel across tiles and
// returns the assembled image with aggregate statistics
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	pool := NewWorkerPool(r.scene, r.width, r.height, r.config.NumWorkers)
	pool.Start()

	tiles := SplitIntoTiles(r.width, r.height, r.config.TileSize)
	r.logger.Printf("Rendering %dx%d: %d tiles across %d workers",
		r.width, r.height, len(tiles), pool.GetNumWorkers())

	for id, bounds := range tiles {
		pool.SubmitTask(TileTask{Bounds: bounds, TaskID: id, Img: img})
	}
	pool.Stop()

	stats := RenderStats{
		NumTiles:   len(tiles),
		NumWorkers: pool.GetNumWorkers(),
	}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}
	stats.RenderTime = time.Since(startTime)

	r.logger.Printf("Render complete in %v: %d pixels, %.1f%% primary hits, avg luminance %.3f",
		stats.RenderTime, stats.TotalPixels, stats.HitRatio()*100, stats.AverageLuminance())

	return img, stats
}

// SplitIntoTiles divides the image into non-overlapping tile bounds
func SplitIntoTiles(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+tileSize, width),
				min(y+tileSize, height),
			))
		}
	}
	return tiles
}
