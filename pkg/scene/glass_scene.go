package scene

import (
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/lights"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/material"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/renderer"
)

// DefaultGlassIOR is the glass sphere's index of refraction when no override
// is given
const DefaultGlassIOR = 1.5

// NewGlassScene creates the showcase scene: a refractive glass sphere front
// and center, a mirror sphere, two matte spheres and a ground plane, lit by
// two point lights. The ior parameter is the externally tunable glass index
// of refraction; values <= 0 fall back to DefaultGlassIOR.
func NewGlassScene(ior float64) (*Scene, error) {
	if ior <= 0 {
		ior = DefaultGlassIOR
	}

	glass, err := material.New(material.Config{
		Ambient:      material.Vec(0.02, 0.02, 0.02),
		Diffuse:      material.Vec(0.1, 0.1, 0.1),
		Specular:     material.Vec(1, 1, 1),
		Shininess:    96,
		Reflectivity: 0.1,
		Transparency: 0.95,
		IOR:          ior,
		Refractive:   true,
	})
	if err != nil {
		return nil, err
	}

	mirror, err := material.New(material.Config{
		Ambient:      material.Vec(0.05, 0.05, 0.05),
		Diffuse:      material.Vec(0.2, 0.2, 0.2),
		Specular:     material.Vec(1, 1, 1),
		Shininess:    64,
		Reflectivity: 0.85,
	})
	if err != nil {
		return nil, err
	}

	matteRed, err := material.New(material.Config{
		Ambient:  material.Vec(0.1, 0.02, 0.02),
		Diffuse:  material.Vec(0.8, 0.15, 0.15),
		Specular: material.Vec(0.6, 0.6, 0.6),
	})
	if err != nil {
		return nil, err
	}

	matteBlue, err := material.New(material.Config{
		Ambient:  material.Vec(0.02, 0.02, 0.1),
		Diffuse:  material.Vec(0.15, 0.25, 0.8),
		Specular: material.Vec(0.6, 0.6, 0.6),
	})
	if err != nil {
		return nil, err
	}

	floor, err := material.New(material.Config{
		Ambient:      material.Vec(0.08, 0.08, 0.08),
		Diffuse:      material.Vec(0.5, 0.5, 0.55),
		Specular:     material.Vec(0.3, 0.3, 0.3),
		Reflectivity: 0.15,
	})
	if err != nil {
		return nil, err
	}

	glassSphere, err := geometry.NewSphere(core.NewVec3(0, 0, -4), 1, glass)
	if err != nil {
		return nil, err
	}
	mirrorSphere, err := geometry.NewSphere(core.NewVec3(-2.2, 0, -5.5), 1, mirror)
	if err != nil {
		return nil, err
	}
	redSphere, err := geometry.NewSphere(core.NewVec3(2.2, 0, -5.5), 1, matteRed)
	if err != nil {
		return nil, err
	}
	blueSphere, err := geometry.NewSphere(core.NewVec3(0, -0.4, -7.5), 0.6, matteBlue)
	if err != nil {
		return nil, err
	}
	ground, err := geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), floor)
	if err != nil {
		return nil, err
	}

	keyLight, err := lights.New(lights.Config{
		Position: lights.Vec(3, 4, -2),
	})
	if err != nil {
		return nil, err
	}
	fillLight, err := lights.New(lights.Config{
		Position: lights.Vec(-4, 3, 0),
		Ambient:  lights.Vec(0.05, 0.05, 0.05),
		Diffuse:  lights.Vec(0.4, 0.4, 0.45),
		Specular: lights.Vec(0.4, 0.4, 0.4),
	})
	if err != nil {
		return nil, err
	}

	return New(
		[]geometry.Primitive{glassSphere, mirrorSphere, redSphere, blueSphere, ground},
		[]*lights.Light{keyLight, fillLight},
		renderer.CameraConfig{VFov: 60},
	)
}
