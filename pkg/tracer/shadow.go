package tracer

import (
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
)

// InShadow reports whether a surface point is occluded from a light. The
// shadow ray starts slightly off the surface along the light direction, and
// the primitive being shaded is excluded from the scan.
//
// Occluder transparency policy: transparency >= 0.9 casts no shadow at all,
// transparency < 0.5 casts full shadow. An occluder in [0.5, 0.9) decides
// neither way and defers to the next occluder in scene order. That middle
// band is intentionally asymmetric and pinned by tests; changing it changes
// rendered output.
func InShadow(point, lightPos core.Vec3, primitives []geometry.Primitive, current geometry.Primitive) bool {
	toLight := lightPos.Subtract(point)
	distanceToLight := toLight.Length()
	lightDir := toLight.Normalize()

	shadowRay := core.NewRay(point.Add(lightDir.Multiply(HitEpsilon)), lightDir)

	for _, primitive := range primitives {
		if primitive == current {
			continue
		}

		t, hit := primitive.Intersect(shadowRay)
		if !hit || t <= HitEpsilon || t >= distanceToLight {
			continue
		}

		transparency := primitive.Material().Transparency
		if transparency >= 0.9 {
			continue
		}
		if transparency < 0.5 {
			return true
		}
		// [0.5, 0.9): fall through to the next occluder
	}

	return false
}
