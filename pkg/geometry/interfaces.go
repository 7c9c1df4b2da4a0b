package geometry

import (
	"math"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/material"
)

// Primitive is the capability set shared by all scene shapes. Dispatch on
// shape kind happens once, through this interface, never by type inspection
// at call sites.
type Primitive interface {
	// Intersect returns the signed ray parameter of the nearest
	// intersection, or false when the ray misses. The returned t may be
	// non-positive; callers filter by their own epsilon policy.
	Intersect(ray core.Ray) (float64, bool)

	// NormalAt returns the unit surface normal at a point on the primitive
	NormalAt(point core.Vec3) core.Vec3

	// Material returns the surface material
	Material() *material.Material
}

// Intersection is the result of resolving a ray against a scene: the ray
// parameter, the primitive that was hit (nil for a miss) and the hit point.
// Computed fresh per ray and never mutated.
type Intersection struct {
	T         float64
	Primitive Primitive
	Point     core.Vec3
}

// NoIntersection returns the miss sentinel: t at +Inf with no primitive
func NoIntersection() Intersection {
	return Intersection{T: math.Inf(1)}
}

// Hit reports whether the intersection refers to an actual surface
func (i Intersection) Hit() bool {
	return i.Primitive != nil
}
