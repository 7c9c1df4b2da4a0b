package geometry

import (
	"fmt"
	"math"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    *material.Material
}

// NewSphere creates a new sphere, validating the radius and material
func NewSphere(center core.Vec3, radius float64, mat *material.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("sphere radius must be positive, got %g", radius)
	}
	if mat == nil {
		return nil, fmt.Errorf("sphere missing material")
	}
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}, nil
}

// Intersect solves the ray/sphere quadratic and returns the near root.
// The far root is never used; a root behind the origin is still returned
// and left to the caller's epsilon filter.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	return (-b - math.Sqrt(discriminant)) / (2 * a), true
}

// NormalAt returns the outward unit normal at a point on the sphere surface
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Material returns the sphere's material
func (s *Sphere) Material() *material.Material {
	return s.Mat
}
