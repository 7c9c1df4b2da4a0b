package renderer

import (
	"math"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
)

// CameraConfig describes the fixed-origin perspective camera. VFov is the
// vertical field of view in degrees; zero picks up the default.
type CameraConfig struct {
	Origin core.Vec3
	VFov   float64
}

// DefaultVFov is the vertical field of view used when a scene does not set one
const DefaultVFov = 60.0

// Camera maps pixel coordinates to primary rays from a fixed origin looking
// down -Z
type Camera struct {
	origin     core.Vec3
	halfWidth  float64
	halfHeight float64
	width      int
	height     int
}

// NewCamera creates a camera for the given image dimensions
func NewCamera(config CameraConfig, width, height int) *Camera {
	vfov := config.VFov
	if vfov <= 0 {
		vfov = DefaultVFov
	}

	aspectRatio := float64(width) / float64(height)
	halfHeight := math.Tan(vfov * math.Pi / 360.0)

	return &Camera{
		origin:     config.Origin,
		halfWidth:  aspectRatio * halfHeight,
		halfHeight: halfHeight,
		width:      width,
		height:     height,
	}
}

// GetRay generates the primary ray through the center of pixel (i, j).
// Pixel (0,0) is the top-left corner of the image.
func (c *Camera) GetRay(i, j int) core.Ray {
	u := (float64(i)+0.5)/float64(c.width)*2 - 1
	v := 1 - (float64(j)+0.5)/float64(c.height)*2

	direction := core.NewVec3(u*c.halfWidth, v*c.halfHeight, -1).Normalize()
	return core.NewRay(c.origin, direction)
}
