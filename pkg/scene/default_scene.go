package scene

import (
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/lights"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/material"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/renderer"
)

// NewDefaultScene creates a minimal scene: the camera at the origin, one
// mildly reflective red sphere straight ahead and a single light up and to
// the right
func NewDefaultScene() (*Scene, error) {
	red, err := material.New(material.Config{
		Ambient:      material.Vec(0.1, 0.02, 0.02),
		Diffuse:      material.Vec(0.7, 0.2, 0.2),
		Specular:     material.Vec(1, 1, 1),
		Reflectivity: 0.4,
	})
	if err != nil {
		return nil, err
	}

	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, red)
	if err != nil {
		return nil, err
	}

	light, err := lights.New(lights.Config{
		Position: lights.Vec(2, 3, -1),
	})
	if err != nil {
		return nil, err
	}

	return New(
		[]geometry.Primitive{sphere},
		[]*lights.Light{light},
		renderer.CameraConfig{VFov: 60},
	)
}
