package server

import (
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/renderer"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string  // Scene name (e.g. "glass")
	Width   int     // Image width
	Height  int     // Image height
	IOR     float64 // Glass index of refraction
	Workers int     // Render workers, 0 = auto
}

// handleRender renders the requested scene synchronously and returns a PNG.
// Moving the IoR slider on the client issues a fresh request, which rebuilds
// the scene with the new index and re-renders every pixel.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.CreateScene(req.Scene, req.IOR)
	if err != nil {
		http.Error(w, fmt.Sprintf("Unknown scene: %v", err), http.StatusBadRequest)
		return
	}

	startTime := time.Now()
	rend := renderer.NewRenderer(sceneObj, req.Width, req.Height, renderer.Config{NumWorkers: req.Workers}, s.logger)
	img, stats := rend.Render()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := png.Encode(w, img); err != nil {
		s.logger.Errorf("Failed to encode render response: %v", err)
		return
	}

	s.logger.Infof("Rendered %s %dx%d (ior=%.2f) in %v, %.1f%% hits",
		req.Scene, req.Width, req.Height, req.IOR, time.Since(startTime), stats.HitRatio()*100)
}

// parseRenderRequest parses and validates request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "glass"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 800, 100, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 600, 100, 2000); err != nil {
		return nil, err
	}
	if req.IOR, err = parseFloatParam(r.URL.Query(), "ior", scene.DefaultGlassIOR, 1.0, 2.5); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 0, 64); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
