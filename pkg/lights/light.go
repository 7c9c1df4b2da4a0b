package lights

import (
	"fmt"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
)

// Light is a point light with Phong color channels
type Light struct {
	Position core.Vec3
	Ambient  core.Vec3
	Diffuse  core.Vec3
	Specular core.Vec3
}

// Config collects light parameters for New. Position is required; the color
// channels fall back to sane defaults when left nil.
type Config struct {
	Position *core.Vec3
	Ambient  *core.Vec3
	Diffuse  *core.Vec3
	Specular *core.Vec3
}

// Default color channels for lights that do not specify them
var (
	DefaultAmbient  = core.NewVec3(0.2, 0.2, 0.2)
	DefaultDiffuse  = core.NewVec3(1, 1, 1)
	DefaultSpecular = core.NewVec3(1, 1, 1)
)

// New validates a Config and builds a Light, failing fast when the position
// is missing
func New(config Config) (*Light, error) {
	if config.Position == nil {
		return nil, fmt.Errorf("light missing position")
	}

	light := &Light{
		Position: *config.Position,
		Ambient:  DefaultAmbient,
		Diffuse:  DefaultDiffuse,
		Specular: DefaultSpecular,
	}
	if config.Ambient != nil {
		light.Ambient = *config.Ambient
	}
	if config.Diffuse != nil {
		light.Diffuse = *config.Diffuse
	}
	if config.Specular != nil {
		light.Specular = *config.Specular
	}
	return light, nil
}

// Vec is a convenience helper for building Configs from literals
func Vec(x, y, z float64) *core.Vec3 {
	v := core.NewVec3(x, y, z)
	return &v
}
