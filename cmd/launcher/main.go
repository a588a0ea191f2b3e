// cmd/launcher/main.go
package main

import (
	"log"
	"os"

	"github.com/drafel/battmon/internal/config"
	"github.com/drafel/battmon/internal/launcher"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: launcher <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	// --------------------
	// Start the backend, detached
	// --------------------

	l, err := launcher.Build(cfg.Launcher)
	if err != nil {
		log.Fatalf("launcher build failed: %v", err)
	}

	pid, err := l.Launch()
	if err != nil {
		log.Fatalf("launch failed: %v", err)
	}

	log.Printf("backend started (pid=%d, port=%d, log=%s)", pid, cfg.Launcher.Port, cfg.Launcher.LogFile)
}
