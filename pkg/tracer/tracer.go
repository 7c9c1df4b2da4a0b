package tracer

import (
	"math"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/lights"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/material"
)

const (
	// MaxDepth caps the shading recursion; depth beyond it shades black.
	// Combined with the finite primitive count this is the only bound on
	// work per ray.
	MaxDepth = 5

	// HitEpsilon is the minimum accepted intersection distance and the
	// surface offset for secondary and shadow rays, preventing a ray from
	// re-hitting the surface it originated from
	HitEpsilon = 0.001
)

// Background is the fixed color substituted for refraction rays that escape
// the scene. Drivers use the same color for primary-ray misses.
var Background = core.NewVec3(50.0/255.0, 50.0/255.0, 50.0/255.0)

// Whitted is the recursive shading engine. It holds read-only views of the
// scene's primitives and lights for the duration of a render; it never
// mutates them, so a single engine may be shared across workers.
type Whitted struct {
	primitives []geometry.Primitive
	lights     []*lights.Light
}

// NewWhitted creates a shading engine over the given primitives and lights
func NewWhitted(primitives []geometry.Primitive, lightList []*lights.Light) *Whitted {
	return &Whitted{
		primitives: primitives,
		lights:     lightList,
	}
}

// RayColor resolves a primary ray and shades the nearest hit. The boolean
// reports whether anything was hit; on a miss the driver substitutes the
// background color.
func (w *Whitted) RayColor(ray core.Ray) (core.Vec3, bool) {
	hit := FindClosestIntersection(ray, w.primitives)
	if !hit.Hit() {
		return core.Vec3{}, false
	}

	normal := hit.Primitive.NormalAt(hit.Point)
	view := ray.Direction.Negate().Normalize()
	return w.shade(hit.Primitive.Material(), normal, view, hit.Point, hit.Primitive, 0), true
}

// shade computes the Phong color at a surface point, recursing into
// reflection and refraction rays. view points from the surface toward the
// ray origin; current is the primitive being shaded, excluded from its own
// shadow tests.
func (w *Whitted) shade(mat *material.Material, normal, view, point core.Vec3, current geometry.Primitive, depth int) core.Vec3 {
	if depth > MaxDepth {
		return core.Vec3{}
	}

	// Only the first light contributes to the ambient term
	result := mat.Ambient.MultiplyVec(w.lights[0].Ambient)

	if mat.Refractive && mat.Transparency > 0 {
		result = result.Add(w.shadeRefractive(mat, normal, view, point, depth))
	} else {
		result = result.Add(w.shadeOpaque(mat, normal, view, point, current, depth))
	}

	return result.ClampMax(1)
}

// shadeRefractive mixes recursively traced reflection and refraction
// contributions by a Schlick-style fresnel weight, plus a half-intensity
// specular highlight per light. Refractive surfaces get no diffuse term and
// no shadow test.
func (w *Whitted) shadeRefractive(mat *material.Material, normal, view, point core.Vec3, depth int) core.Vec3 {
	var result core.Vec3

	cosTheta := math.Abs(view.Dot(normal))
	fresnel := mat.Reflectivity + (1-mat.Reflectivity)*math.Pow(1-cosTheta, 5)

	if fresnel > 0 {
		reflectDir := view.Negate().Reflect(normal)
		if color, hit := w.traceSecondary(reflectDir, point, depth); hit {
			result = result.Add(color.Multiply(fresnel))
		}
	}

	if refractFactor := 1 - fresnel; refractFactor > 0 {
		refractDir := view.Negate().Refract(normal, mat.IOR)
		weight := mat.Transparency * refractFactor
		if color, hit := w.traceSecondary(refractDir, point, depth); hit {
			result = result.Add(color.Multiply(weight))
		} else {
			result = result.Add(Background.Multiply(weight))
		}
	}

	for _, light := range w.lights {
		lightDir := light.Position.Subtract(point).Normalize()
		result = result.Add(specular(mat, light, normal, lightDir, view).Multiply(0.5))
	}

	return result
}

// shadeOpaque accumulates shadowed diffuse and specular terms per light,
// plus a flat reflectivity-weighted reflection bounce
func (w *Whitted) shadeOpaque(mat *material.Material, normal, view, point core.Vec3, current geometry.Primitive, depth int) core.Vec3 {
	var result core.Vec3

	for _, light := range w.lights {
		if InShadow(point, light.Position, w.primitives, current) {
			continue
		}
		lightDir := light.Position.Subtract(point).Normalize()
		result = result.Add(diffuse(mat, light, normal, lightDir))
		result = result.Add(specular(mat, light, normal, lightDir, view))
	}

	if mat.Reflectivity > 0 && depth < MaxDepth {
		reflectDir := view.Negate().Reflect(normal)
		if color, hit := w.traceSecondary(reflectDir, point, depth); hit {
			result = result.Add(color.Multiply(mat.Reflectivity))
		}
	}

	return result
}

// traceSecondary casts a reflection or refraction ray from a surface point,
// offset along its direction to escape the originating surface, and shades
// the hit one level deeper. A miss contributes nothing; the caller decides
// whether a background term applies.
func (w *Whitted) traceSecondary(direction, point core.Vec3, depth int) (core.Vec3, bool) {
	ray := core.NewRay(point.Add(direction.Multiply(HitEpsilon)), direction)
	hit := FindClosestIntersection(ray, w.primitives)
	if !hit.Hit() {
		return core.Vec3{}, false
	}

	normal := hit.Primitive.NormalAt(hit.Point)
	view := direction.Negate()
	return w.shade(hit.Primitive.Material(), normal, view, hit.Point, hit.Primitive, depth+1), true
}

// diffuse returns the Lambertian term for one light
func diffuse(mat *material.Material, light *lights.Light, normal, lightDir core.Vec3) core.Vec3 {
	factor := math.Max(normal.Dot(lightDir), 0)
	return mat.Diffuse.MultiplyVec(light.Diffuse).Multiply(factor)
}

// specular returns the Phong highlight for one light: the negated light
// direction reflected about the normal, raised to the shininess exponent
func specular(mat *material.Material, light *lights.Light, normal, lightDir, view core.Vec3) core.Vec3 {
	reflected := lightDir.Negate().Reflect(normal)
	factor := math.Pow(math.Max(view.Dot(reflected), 0), mat.Shininess)
	return mat.Specular.MultiplyVec(light.Specular).Multiply(factor)
}
