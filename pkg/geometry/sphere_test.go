package geometry

import (
	"math"
	"testing"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/material"
)

func testMaterial(t *testing.T) *material.Material {
	t.Helper()
	mat, err := material.New(material.Config{
		Ambient:  material.Vec(0.1, 0.1, 0.1),
		Diffuse:  material.Vec(0.7, 0.2, 0.2),
		Specular: material.Vec(1, 1, 1),
	})
	if err != nil {
		t.Fatalf("Failed to create test material: %v", err)
	}
	return mat
}

func TestNewSphere_Validation(t *testing.T) {
	mat := testMaterial(t)

	if _, err := NewSphere(core.NewVec3(0, 0, 0), 0, mat); err == nil {
		t.Error("Expected error for zero radius")
	}
	if _, err := NewSphere(core.NewVec3(0, 0, 0), -1, mat); err == nil {
		t.Error("Expected error for negative radius")
	}
	if _, err := NewSphere(core.NewVec3(0, 0, 0), 1, nil); err == nil {
		t.Error("Expected error for missing material")
	}
}

func TestSphere_Intersect(t *testing.T) {
	mat := testMaterial(t)

	tests := []struct {
		name    string
		center  core.Vec3
		radius  float64
		ray     core.Ray
		wantT   float64
		wantHit bool
	}{
		{
			name:    "head-on hit returns t = d - r",
			center:  core.NewVec3(0, 0, 0),
			radius:  1,
			ray:     core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)),
			wantT:   4,
			wantHit: true,
		},
		{
			name:    "offset sphere along the axis",
			center:  core.NewVec3(0, 0, -5),
			radius:  1,
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			wantT:   4,
			wantHit: true,
		},
		{
			name:    "miss to the side",
			center:  core.NewVec3(0, 0, -5),
			radius:  1,
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			wantHit: false,
		},
		{
			name:    "sphere behind origin returns negative near root",
			center:  core.NewVec3(0, 0, 5),
			radius:  1,
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			wantT:   -6,
			wantHit: true,
		},
		{
			name:    "grazing tangent ray",
			center:  core.NewVec3(0, 1, -5),
			radius:  1,
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			wantT:   5,
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere, err := NewSphere(tt.center, tt.radius, mat)
			if err != nil {
				t.Fatalf("Failed to create sphere: %v", err)
			}

			gotT, gotHit := sphere.Intersect(tt.ray)
			if gotHit != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v", tt.wantHit, gotHit)
			}
			if gotHit && math.Abs(gotT-tt.wantT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.wantT, gotT)
			}
		})
	}
}

func TestSphere_NormalAt(t *testing.T) {
	mat := testMaterial(t)
	sphere, err := NewSphere(core.NewVec3(1, 2, 3), 2, mat)
	if err != nil {
		t.Fatalf("Failed to create sphere: %v", err)
	}

	// Sample points on the surface in several directions
	points := []core.Vec3{
		core.NewVec3(3, 2, 3),
		core.NewVec3(1, 4, 3),
		core.NewVec3(1, 2, 1),
		sphere.Center.Add(core.NewVec3(1, 1, 1).Normalize().Multiply(sphere.Radius)),
	}

	for _, point := range points {
		normal := sphere.NormalAt(point)
		if math.Abs(normal.Length()-1.0) > 1e-9 {
			t.Errorf("Normal at %v should be unit length, got %v", point, normal.Length())
		}
		if normal.Dot(point.Subtract(sphere.Center)) <= 0 {
			t.Errorf("Normal at %v should point outward", point)
		}
	}
}
