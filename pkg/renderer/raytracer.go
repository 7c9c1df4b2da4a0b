package renderer

import (
	"image"
	"image/color"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/lights"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/tracer"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetPrimitives() []geometry.Primitive
	GetLights() []*lights.Light
	GetCameraConfig() CameraConfig
}

// Raytracer renders pixels for one worker: one primary ray per pixel,
// resolved and shaded by the Whitted engine
type Raytracer struct {
	camera *Camera
	engine *tracer.Whitted
	width  int
	height int
}

// NewRaytracer creates a new raytracer for the given scene and image size
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		camera: NewCamera(scene.GetCameraConfig(), width, height),
		engine: tracer.NewWhitted(scene.GetPrimitives(), scene.GetLights()),
		width:  width,
		height: height,
	}
}

// RenderBounds renders all pixels within bounds directly into the shared
// framebuffer. Tiles have non-overlapping bounds, so concurrent calls are
// safe without locking.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	var stats RenderStats

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ray := rt.camera.GetRay(i, j)

			pixel, hit := rt.engine.RayColor(ray)
			if hit {
				stats.PrimaryHits++
			} else {
				pixel = tracer.Background
			}

			img.SetRGBA(i, j, toRGBA(pixel))
			stats.TotalPixels++
			stats.LuminanceSum += pixel.Luminance()
		}
	}

	return stats
}

// toRGBA scales a [0,1] color to 8-bit channels at full opacity
func toRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(c.X*255 + 0.5),
		G: uint8(c.Y*255 + 0.5),
		B: uint8(c.Z*255 + 0.5),
		A: 255,
	}
}
