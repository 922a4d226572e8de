package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/stevenjmoe/learning-wgpu/internal/logger"
	"github.com/stevenjmoe/learning-wgpu/pkg/config"
	"github.com/stevenjmoe/learning-wgpu/pkg/engine"
)

func init() {
	// GLFW and the GPU surface require the program's main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("%v", err)
	}

	var lg *logger.Logger
	if cfg.Logging.File != "" {
		lg, err = logger.NewMultiLogger(cfg.Logging.Level, cfg.Logging.File)
		if err != nil {
			log.Fatalf("Failed to set up logging: %v", err)
		}
	} else {
		lg = logger.NewLogger(cfg.Logging.Level)
	}
	defer lg.Close()

	lg.Info("Starting triangle host...")

	eng, err := engine.NewEngine(cfg, lg)
	if err != nil {
		lg.Fatalf("Failed to initialize engine: %v", err)
	}

	eng.Run()
}
