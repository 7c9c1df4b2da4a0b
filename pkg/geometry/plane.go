package geometry

import (
	"fmt"
	"math"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/material"
)

// parallelEpsilon rejects rays nearly parallel to the plane before the
// t division can blow up
const parallelEpsilon = 1e-4

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point  core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal, constant for all points on the plane
	Mat    *material.Material
}

// NewPlane creates a new plane, normalizing the normal at construction
func NewPlane(point, normal core.Vec3, mat *material.Material) (*Plane, error) {
	if normal.LengthSquared() == 0 {
		return nil, fmt.Errorf("plane missing normal")
	}
	if mat == nil {
		return nil, fmt.Errorf("plane missing material")
	}
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Mat:    mat,
	}, nil
}

// Intersect tests if a ray intersects the plane. Rays parallel or nearly
// parallel to the plane and intersections behind the origin report a miss.
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the stored constant normal; the query point is ignored
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// Material returns the plane's material
func (p *Plane) Material() *material.Material {
	return p.Mat
}
