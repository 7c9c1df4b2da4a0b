// Package loaders parses scene description files into plain data structures.
// Building validated scene entities from the parsed data happens in the
// scene package.
package loaders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// SceneFile is the top-level YAML scene document
type SceneFile struct {
	Camera  *CameraSection  `yaml:"camera"`
	Lights  []LightSection  `yaml:"lights"`
	Spheres []SphereSection `yaml:"spheres"`
	Planes  []PlaneSection  `yaml:"planes"`
}

// CameraSection configures the fixed-origin camera
type CameraSection struct {
	Origin []float64 `yaml:"origin"`
	VFov   float64   `yaml:"vfov"`
}

// MaterialSection holds Phong material parameters. Nil slices and pointers
// mean "not given": the required colors fail validation downstream, the
// scalars pick up their defaults.
type MaterialSection struct {
	Ambient      []float64 `yaml:"ambient"`
	Diffuse      []float64 `yaml:"diffuse"`
	Specular     []float64 `yaml:"specular"`
	Shininess    float64   `yaml:"shininess"`
	Reflectivity float64   `yaml:"reflectivity"`
	Transparency float64   `yaml:"transparency"`
	IOR          float64   `yaml:"ior"`
	Refractive   bool      `yaml:"refractive"`
}

// LightSection holds point light parameters
type LightSection struct {
	Position []float64 `yaml:"position"`
	Ambient  []float64 `yaml:"ambient"`
	Diffuse  []float64 `yaml:"diffuse"`
	Specular []float64 `yaml:"specular"`
}

// SphereSection holds sphere parameters with an inline material
type SphereSection struct {
	Center   []float64       `yaml:"center"`
	Radius   float64         `yaml:"radius"`
	Material MaterialSection `yaml:"material"`
}

// PlaneSection holds plane parameters with an inline material
type PlaneSection struct {
	Point    []float64       `yaml:"point"`
	Normal   []float64       `yaml:"normal"`
	Material MaterialSection `yaml:"material"`
}

// LoadSceneFile reads and parses a YAML scene file
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var file SceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	if len(file.Spheres) == 0 && len(file.Planes) == 0 {
		return nil, fmt.Errorf("scene file %s defines no primitives", path)
	}

	return &file, nil
}
