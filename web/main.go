package main

import (
	"flag"
	"os"

	"github.com/MrWinstonjie/go-whitted-raytracer/internal/logger"
	"github.com/MrWinstonjie/go-whitted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log := logger.New(*logLevel)
	webServer := server.NewServer(*port, log)

	log.Infof("Whitted Raytracer Web Server")
	log.Infof("Visit http://localhost:%d to start rendering", *port)

	if err := webServer.Start(); err != nil {
		log.Errorf("Error starting server: %v", err)
		os.Exit(1)
	}
}
