package scene

import (
	"testing"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/geometry"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/renderer"
)

func TestNew_Validation(t *testing.T) {
	glass, err := NewGlassScene(1.5)
	if err != nil {
		t.Fatalf("Failed to build glass scene: %v", err)
	}

	if _, err := New(nil, glass.Lights, renderer.CameraConfig{}); err == nil {
		t.Error("Expected error for scene with no primitives")
	}
	if _, err := New(glass.Primitives, nil, renderer.CameraConfig{}); err == nil {
		t.Error("Expected error for scene with no lights")
	}
}

func TestBuiltinScenes(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Scene, error)
	}{
		{"glass", func() (*Scene, error) { return NewGlassScene(1.5) }},
		{"glass with default ior", func() (*Scene, error) { return NewGlassScene(0) }},
		{"default", NewDefaultScene},
		{"mirror", NewMirrorScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.build()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(s.GetPrimitives()) == 0 {
				t.Error("Scene should have primitives")
			}
			if len(s.GetLights()) == 0 {
				t.Error("Scene should have lights")
			}
		})
	}
}

func TestNewGlassScene_AppliesIOR(t *testing.T) {
	s, err := NewGlassScene(2.4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var found bool
	for _, p := range s.GetPrimitives() {
		mat := p.Material()
		if mat.Refractive {
			found = true
			if mat.IOR != 2.4 {
				t.Errorf("Expected glass IOR 2.4, got %v", mat.IOR)
			}
		}
	}
	if !found {
		t.Error("Glass scene should contain a refractive primitive")
	}
}

func TestNewGlassScene_InvalidIOR(t *testing.T) {
	if _, err := NewGlassScene(0.5); err == nil {
		t.Error("Expected error for IOR below 1")
	}
}

func TestNewGlassScene_RebuildIsFresh(t *testing.T) {
	// Changing the IoR builds a new scene value instead of mutating
	a, err := NewGlassScene(1.3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, err := NewGlassScene(1.8)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	iorOf := func(s *Scene) float64 {
		for _, p := range s.GetPrimitives() {
			if p.Material().Refractive {
				return p.Material().IOR
			}
		}
		return 0
	}
	if iorOf(a) != 1.3 || iorOf(b) != 1.8 {
		t.Errorf("Rebuilding must not disturb earlier scenes: got %v and %v", iorOf(a), iorOf(b))
	}
}

func TestNewMirrorScene_FacingSpheres(t *testing.T) {
	s, err := NewMirrorScene()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	spheres := 0
	for _, p := range s.GetPrimitives() {
		sphere, ok := p.(*geometry.Sphere)
		if !ok {
			continue
		}
		spheres++
		if p.Material().Reflectivity != 1.0 {
			t.Errorf("Mirror sphere should have full reflectivity, got %v", p.Material().Reflectivity)
		}
		if sphere.Center.X != 0 || sphere.Center.Y != 0 {
			t.Errorf("Mirror spheres should sit on the Z axis, got center %v", sphere.Center)
		}
	}
	if spheres != 2 {
		t.Errorf("Expected 2 mirror spheres, got %d", spheres)
	}
}

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		{"glass scene", "glass", false},
		{"default scene", "default", false},
		{"mirror scene", "mirror", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
		{"missing yaml path", "scenes/nonexistent.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CreateScene(tt.sceneName, 1.5)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene %q, got none", tt.sceneName)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene %q: %v", tt.sceneName, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for %q, got nil", tt.sceneName)
			}
		})
	}
}

func TestNewDefaultScene_Lighting(t *testing.T) {
	s, err := NewDefaultScene()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	light := s.GetLights()[0]
	if light.Position.X != 2 || light.Position.Y != 3 || light.Position.Z != -1 {
		t.Errorf("Expected light at (2,3,-1), got %v", light.Position)
	}
}
