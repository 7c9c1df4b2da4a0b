package tracer

import (
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
)

// FindClosestIntersection scans every primitive linearly and returns the
// nearest hit with t > HitEpsilon, or the miss sentinel when nothing
// qualifies. The epsilon rejects self-intersections from rays that originate
// exactly on a surface. When two primitives report exactly equal t, the
// earlier one in scene order wins.
func FindClosestIntersection(ray core.Ray, primitives []geometry.Primitive) geometry.Intersection {
	closest := geometry.NoIntersection()

	for _, primitive := range primitives {
		t, hit := primitive.Intersect(ray)
		if !hit || t <= HitEpsilon {
			continue
		}
		if t < closest.T {
			closest = geometry.Intersection{
				T:         t,
				Primitive: primitive,
				Point:     ray.At(t),
			}
		}
	}

	return closest
}
