package scene

import (
	"fmt"
	"strings"
)

// CreateScene resolves a scene name for the drivers. Built-in names are
// tried first; anything ending in .yaml/.yml is loaded as a scene file path.
// The ior parameter applies to the glass scene only; other scenes have no
// tunable parameter.
func CreateScene(name string, ior float64) (*Scene, error) {
	switch name {
	case "glass":
		return NewGlassScene(ior)
	case "default":
		return NewDefaultScene()
	case "mirror":
		return NewMirrorScene()
	}

	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return LoadSceneFile(name)
	}

	return nil, fmt.Errorf("unknown scene: %q (available: glass, default, mirror, or a .yaml scene file)", name)
}
