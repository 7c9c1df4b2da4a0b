package scene

import (
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/lights"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/material"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/renderer"
)

// NewMirrorScene creates two mutually facing perfect mirrors with the camera
// between them. Reflection rays ping-pong until the recursion depth cap cuts
// them off, which makes this the stress scene for the termination guarantee.
func NewMirrorScene() (*Scene, error) {
	mirror, err := material.New(material.Config{
		Ambient:      material.Vec(0.05, 0.05, 0.05),
		Diffuse:      material.Vec(0.1, 0.1, 0.1),
		Specular:     material.Vec(1, 1, 1),
		Shininess:    64,
		Reflectivity: 1.0,
	})
	if err != nil {
		return nil, err
	}

	front, err := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, mirror)
	if err != nil {
		return nil, err
	}
	back, err := geometry.NewSphere(core.NewVec3(0, 0, 3), 1, mirror)
	if err != nil {
		return nil, err
	}

	light, err := lights.New(lights.Config{
		Position: lights.Vec(0, 5, 0),
	})
	if err != nil {
		return nil, err
	}

	return New(
		[]geometry.Primitive{front, back},
		[]*lights.Light{light},
		renderer.CameraConfig{VFov: 60},
	)
}
