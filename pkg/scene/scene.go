package scene

import (
	"fmt"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/lights"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. A Scene is read-only
// once built; parameter changes (such as the glass index of refraction)
// construct a fresh Scene rather than mutating an existing one.
type Scene struct {
	Primitives []geometry.Primitive
	Lights     []*lights.Light
	Camera     renderer.CameraConfig
}

// New validates and builds a Scene. At least one primitive and one light are
// required; the shading engine's ambient term reads the first light.
func New(primitives []geometry.Primitive, lightList []*lights.Light, camera renderer.CameraConfig) (*Scene, error) {
	if len(primitives) == 0 {
		return nil, fmt.Errorf("scene has no primitives")
	}
	if len(lightList) == 0 {
		return nil, fmt.Errorf("scene has no lights")
	}
	return &Scene{
		Primitives: primitives,
		Lights:     lightList,
		Camera:     camera,
	}, nil
}

// GetPrimitives returns the scene's primitives
func (s *Scene) GetPrimitives() []geometry.Primitive {
	return s.Primitives
}

// GetLights returns the scene's lights
func (s *Scene) GetLights() []*lights.Light {
	return s.Lights
}

// GetCameraConfig returns the scene's camera configuration
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.Camera
}
