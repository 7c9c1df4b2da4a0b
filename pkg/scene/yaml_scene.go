package scene

import (
	"fmt"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/lights"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/loaders"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/material"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/renderer"
)

// LoadSceneFile parses a YAML scene file and builds a validated Scene from it
func LoadSceneFile(path string) (*Scene, error) {
	file, err := loaders.LoadSceneFile(path)
	if err != nil {
		return nil, err
	}
	return buildScene(file)
}

// buildScene converts parsed scene-file data into validated entities
func buildScene(file *loaders.SceneFile) (*Scene, error) {
	camera := renderer.CameraConfig{}
	if file.Camera != nil {
		origin, err := optionalVec3(file.Camera.Origin, "camera origin")
		if err != nil {
			return nil, err
		}
		if origin != nil {
			camera.Origin = *origin
		}
		camera.VFov = file.Camera.VFov
	}

	var primitives []geometry.Primitive
	for i, section := range file.Spheres {
		sphere, err := buildSphere(section)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		primitives = append(primitives, sphere)
	}
	for i, section := range file.Planes {
		plane, err := buildPlane(section)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		primitives = append(primitives, plane)
	}

	var lightList []*lights.Light
	for i, section := range file.Lights {
		light, err := buildLight(section)
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		lightList = append(lightList, light)
	}

	return New(primitives, lightList, camera)
}

func buildSphere(section loaders.SphereSection) (*geometry.Sphere, error) {
	center, err := requiredVec3(section.Center, "center")
	if err != nil {
		return nil, err
	}
	mat, err := buildMaterial(section.Material)
	if err != nil {
		return nil, err
	}
	return geometry.NewSphere(center, section.Radius, mat)
}

func buildPlane(section loaders.PlaneSection) (*geometry.Plane, error) {
	point, err := requiredVec3(section.Point, "point")
	if err != nil {
		return nil, err
	}
	normal, err := requiredVec3(section.Normal, "normal")
	if err != nil {
		return nil, err
	}
	mat, err := buildMaterial(section.Material)
	if err != nil {
		return nil, err
	}
	return geometry.NewPlane(point, normal, mat)
}

func buildMaterial(section loaders.MaterialSection) (*material.Material, error) {
	ambient, err := optionalVec3(section.Ambient, "material ambient")
	if err != nil {
		return nil, err
	}
	diffuse, err := optionalVec3(section.Diffuse, "material diffuse")
	if err != nil {
		return nil, err
	}
	specular, err := optionalVec3(section.Specular, "material specular")
	if err != nil {
		return nil, err
	}

	return material.New(material.Config{
		Ambient:      ambient,
		Diffuse:      diffuse,
		Specular:     specular,
		Shininess:    section.Shininess,
		Reflectivity: section.Reflectivity,
		Transparency: section.Transparency,
		IOR:          section.IOR,
		Refractive:   section.Refractive,
	})
}

func buildLight(section loaders.LightSection) (*lights.Light, error) {
	position, err := optionalVec3(section.Position, "light position")
	if err != nil {
		return nil, err
	}
	ambient, err := optionalVec3(section.Ambient, "light ambient")
	if err != nil {
		return nil, err
	}
	diffuse, err := optionalVec3(section.Diffuse, "light diffuse")
	if err != nil {
		return nil, err
	}
	specular, err := optionalVec3(section.Specular, "light specular")
	if err != nil {
		return nil, err
	}

	return lights.New(lights.Config{
		Position: position,
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
	})
}

// requiredVec3 converts a YAML triple that must be present
func requiredVec3(values []float64, name string) (core.Vec3, error) {
	v, err := optionalVec3(values, name)
	if err != nil {
		return core.Vec3{}, err
	}
	if v == nil {
		return core.Vec3{}, fmt.Errorf("missing %s", name)
	}
	return *v, nil
}

// optionalVec3 converts a YAML triple, passing nil through for absent values
func optionalVec3(values []float64, name string) (*core.Vec3, error) {
	if values == nil {
		return nil, nil
	}
	if len(values) != 3 {
		return nil, fmt.Errorf("%s must have exactly 3 components, got %d", name, len(values))
	}
	v := core.NewVec3(values[0], values[1], values[2])
	return &v, nil
}
