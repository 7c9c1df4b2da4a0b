package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSceneFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}
	return path
}

const validSceneYAML = `
camera:
  origin: [0, 0, 0]
  vfov: 60
lights:
  - position: [2, 3, -1]
  - position: [-4, 3, 0]
    diffuse: [0.4, 0.4, 0.45]
spheres:
  - center: [0, 0, -4]
    radius: 1
    material:
      ambient: [0.02, 0.02, 0.02]
      diffuse: [0.1, 0.1, 0.1]
      specular: [1, 1, 1]
      transparency: 0.95
      ior: 1.5
      refractive: true
planes:
  - point: [0, -1, 0]
    normal: [0, 1, 0]
    material:
      ambient: [0.08, 0.08, 0.08]
      diffuse: [0.5, 0.5, 0.55]
      specular: [0.3, 0.3, 0.3]
      reflectivity: 0.15
`

func TestLoadSceneFile_Valid(t *testing.T) {
	path := writeSceneFile(t, validSceneYAML)

	s, err := LoadSceneFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(s.GetPrimitives()) != 2 {
		t.Errorf("Expected 2 primitives, got %d", len(s.GetPrimitives()))
	}
	if len(s.GetLights()) != 2 {
		t.Errorf("Expected 2 lights, got %d", len(s.GetLights()))
	}
	if s.GetCameraConfig().VFov != 60 {
		t.Errorf("Expected vfov 60, got %v", s.GetCameraConfig().VFov)
	}

	glass := s.GetPrimitives()[0].Material()
	if !glass.Refractive || glass.IOR != 1.5 {
		t.Errorf("Expected refractive material with IOR 1.5, got %+v", glass)
	}

	// Unspecified light channels fall back to defaults
	first := s.GetLights()[0]
	if first.Diffuse.X != 1 {
		t.Errorf("Expected default diffuse for first light, got %v", first.Diffuse)
	}
	second := s.GetLights()[1]
	if second.Diffuse.X != 0.4 {
		t.Errorf("Expected overridden diffuse for second light, got %v", second.Diffuse)
	}
}

func TestLoadSceneFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "material missing diffuse",
			content: `
lights:
  - position: [0, 5, 0]
spheres:
  - center: [0, 0, -4]
    radius: 1
    material:
      ambient: [0.1, 0.1, 0.1]
      specular: [1, 1, 1]
`,
			wantErr: "missing diffuse",
		},
		{
			name: "light missing position",
			content: `
lights:
  - diffuse: [1, 1, 1]
spheres:
  - center: [0, 0, -4]
    radius: 1
    material:
      ambient: [0.1, 0.1, 0.1]
      diffuse: [0.5, 0.5, 0.5]
      specular: [1, 1, 1]
`,
			wantErr: "position",
		},
		{
			name: "sphere with bad radius",
			content: `
lights:
  - position: [0, 5, 0]
spheres:
  - center: [0, 0, -4]
    radius: -1
    material:
      ambient: [0.1, 0.1, 0.1]
      diffuse: [0.5, 0.5, 0.5]
      specular: [1, 1, 1]
`,
			wantErr: "radius",
		},
		{
			name: "wrong component count",
			content: `
lights:
  - position: [0, 5]
spheres:
  - center: [0, 0, -4]
    radius: 1
    material:
      ambient: [0.1, 0.1, 0.1]
      diffuse: [0.5, 0.5, 0.5]
      specular: [1, 1, 1]
`,
			wantErr: "3 components",
		},
		{
			name: "no primitives",
			content: `
lights:
  - position: [0, 5, 0]
`,
			wantErr: "no primitives",
		},
		{
			name:    "not yaml",
			content: "{{{",
			wantErr: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSceneFile(t, tt.content)
			_, err := LoadSceneFile(path)
			if err == nil {
				t.Fatal("Expected error, got none")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadSceneFile_MissingFile(t *testing.T) {
	if _, err := LoadSceneFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestCreateScene_YAMLPath(t *testing.T) {
	path := writeSceneFile(t, validSceneYAML)
	s, err := CreateScene(path, 1.5)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(s.GetPrimitives()) != 2 {
		t.Errorf("Expected 2 primitives, got %d", len(s.GetPrimitives()))
	}
}
