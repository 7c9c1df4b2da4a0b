package material

import (
	"fmt"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
)

// Default parameter values applied when a Config leaves them unset
const (
	DefaultShininess = 32.0
	DefaultIOR       = 1.0
)

// Material describes Phong shading parameters for a surface.
// Ambient, Diffuse and Specular are RGB triples. Refractive gates whether
// Transparency and IOR participate in shading at all: a material with
// Refractive=false never spawns a refraction ray regardless of Transparency.
type Material struct {
	Ambient      core.Vec3
	Diffuse      core.Vec3
	Specular     core.Vec3
	Shininess    float64 // Phong exponent, > 0
	Reflectivity float64 // [0,1], flat reflection blend weight
	Transparency float64 // [0,1]
	IOR          float64 // index of refraction, >= 1
	Refractive   bool
}

// Config collects material parameters for New. The three color channels are
// required; pointers distinguish "not given" from an explicit zero color.
// Zero-valued Shininess and IOR pick up their defaults.
type Config struct {
	Ambient      *core.Vec3
	Diffuse      *core.Vec3
	Specular     *core.Vec3
	Shininess    float64
	Reflectivity float64
	Transparency float64
	IOR          float64
	Refractive   bool
}

// New validates a Config and builds a Material, failing fast with the name
// of the missing or invalid field. Scene-authoring errors surface here,
// before any tracing begins.
func New(config Config) (*Material, error) {
	if config.Ambient == nil {
		return nil, fmt.Errorf("material missing ambient color")
	}
	if config.Diffuse == nil {
		return nil, fmt.Errorf("material missing diffuse color")
	}
	if config.Specular == nil {
		return nil, fmt.Errorf("material missing specular color")
	}

	shininess := config.Shininess
	if shininess == 0 {
		shininess = DefaultShininess
	}
	if shininess < 0 {
		return nil, fmt.Errorf("material shininess must be positive, got %g", shininess)
	}

	if config.Reflectivity < 0 || config.Reflectivity > 1 {
		return nil, fmt.Errorf("material reflectivity must be in [0,1], got %g", config.Reflectivity)
	}
	if config.Transparency < 0 || config.Transparency > 1 {
		return nil, fmt.Errorf("material transparency must be in [0,1], got %g", config.Transparency)
	}

	ior := config.IOR
	if ior == 0 {
		ior = DefaultIOR
	}
	if ior < 1 {
		return nil, fmt.Errorf("material index of refraction must be >= 1, got %g", ior)
	}

	return &Material{
		Ambient:      *config.Ambient,
		Diffuse:      *config.Diffuse,
		Specular:     *config.Specular,
		Shininess:    shininess,
		Reflectivity: config.Reflectivity,
		Transparency: config.Transparency,
		IOR:          ior,
		Refractive:   config.Refractive,
	}, nil
}

// Vec is a convenience helper for building Configs from literals
func Vec(x, y, z float64) *core.Vec3 {
	v := core.NewVec3(x, y, z)
	return &v
}
