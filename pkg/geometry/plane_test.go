package geometry

import (
	"math"
	"testing"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/core"
)

func TestNewPlane_Validation(t *testing.T) {
	mat := testMaterial(t)

	if _, err := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0), mat); err == nil {
		t.Error("Expected error for zero normal")
	}
	if _, err := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil); err == nil {
		t.Error("Expected error for missing material")
	}
}

func TestNewPlane_NormalizesNormal(t *testing.T) {
	mat := testMaterial(t)
	plane, err := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 5, 0), mat)
	if err != nil {
		t.Fatalf("Failed to create plane: %v", err)
	}
	if math.Abs(plane.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Constructor should normalize the normal, got length %v", plane.Normal.Length())
	}
}

func TestPlane_Intersect(t *testing.T) {
	mat := testMaterial(t)
	ground, err := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), mat)
	if err != nil {
		t.Fatalf("Failed to create plane: %v", err)
	}

	tests := []struct {
		name    string
		ray     core.Ray
		wantT   float64
		wantHit bool
	}{
		{
			name:    "straight down onto the ground",
			ray:     core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0)),
			wantT:   3,
			wantHit: true,
		},
		{
			name:    "angled hit",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, -1).Normalize()),
			wantT:   math.Sqrt(2),
			wantHit: true,
		},
		{
			name:    "parallel ray misses",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "nearly parallel ray misses under the epsilon guard",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, -5e-5, 0).Normalize()),
			wantHit: false,
		},
		{
			name:    "plane behind the ray origin misses",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, gotHit := ground.Intersect(tt.ray)
			if gotHit != tt.wantHit {
				t.Fatalf("Expected hit=%v, got %v (t=%v)", tt.wantHit, gotHit, gotT)
			}
			if gotHit && math.Abs(gotT-tt.wantT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.wantT, gotT)
			}
		})
	}
}

func TestPlane_NormalAt_IgnoresPoint(t *testing.T) {
	mat := testMaterial(t)
	plane, err := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), mat)
	if err != nil {
		t.Fatalf("Failed to create plane: %v", err)
	}

	a := plane.NormalAt(core.NewVec3(100, -1, 3))
	b := plane.NormalAt(core.NewVec3(-7, -1, 42))
	if a != b || a != core.NewVec3(0, 1, 0) {
		t.Errorf("Plane normal should be constant (0,1,0), got %v and %v", a, b)
	}
}

func TestNoIntersection_Sentinel(t *testing.T) {
	miss := NoIntersection()
	if miss.Hit() {
		t.Error("Sentinel should not report a hit")
	}
	if !math.IsInf(miss.T, 1) {
		t.Errorf("Sentinel t should be +Inf, got %v", miss.T)
	}
}
