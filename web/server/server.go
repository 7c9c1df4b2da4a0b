package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MrWinstonjie/go-whitted-raytracer/internal/logger"
	"github.com/MrWinstonjie/go-whitted-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer. Each render request is a
// full synchronous sweep: the scene is rebuilt from the request parameters
// (including the glass index of refraction) and traced once.
type Server struct {
	port   int
	logger *logger.Logger
}

// NewServer creates a new web server
func NewServer(port int, log *logger.Logger) *Server {
	return &Server{port: port, logger: log}
}

// SceneConfig describes the tunable parameters exposed to UI controls
type SceneConfig struct {
	Scenes       []string `json:"scenes"`
	DefaultScene string   `json:"defaultScene"`
	Width        Limits   `json:"width"`
	Height       Limits   `json:"height"`
	IOR          Limits   `json:"ior"`
}

// Limits describes a numeric parameter's default and valid range
type Limits struct {
	Default float64 `json:"default"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// Start starts the web server
func (s *Server) Start() error {
	http.Handle("/", http.FileServer(http.Dir("web/static/")))

	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scene-config", s.handleSceneConfig)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Infof("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleSceneConfig returns scene names and parameter limits for UI sliders
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	config := SceneConfig{
		Scenes:       []string{"glass", "default", "mirror"},
		DefaultScene: "glass",
		Width:        Limits{Default: 800, Min: 100, Max: 2000},
		Height:       Limits{Default: 600, Min: 100, Max: 2000},
		IOR:          Limits{Default: scene.DefaultGlassIOR, Min: 1.0, Max: 2.5},
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(config)
}
