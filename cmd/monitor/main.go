// cmd/monitor/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drafel/battmon/internal/config"
	"github.com/drafel/battmon/internal/journal"
	"github.com/drafel/battmon/internal/monitor"
	"github.com/drafel/battmon/internal/probe"
)

func main() {
	args := os.Args[1:]

	watch := false
	if len(args) > 0 && args[0] == "-watch" {
		watch = true
		args = args[1:]
	}

	if len(args) < 1 {
		log.Fatal("usage: monitor [-watch] <config.yaml>")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(args[0])
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	// --------------------
	// Build prober + journal
	// --------------------

	p, err := probe.Build(cfg.Monitor)
	if err != nil {
		log.Fatalf("probe build failed: %v", err)
	}

	j, err := journal.New(cfg.Monitor.LogFile)
	if err != nil {
		log.Fatalf("journal build failed: %v", err)
	}

	// --------------------
	// Cron mode: one probe, one record, exit 0
	// --------------------

	if !watch {
		if err := monitor.RunOnce(context.Background(), p, j); err != nil {
			log.Fatalf("health journal write failed: %v", err)
		}
		return
	}

	// --------------------
	// Watch mode: probe loop until SIGINT/SIGTERM
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := j.Ensure(); err != nil {
		log.Fatalf("health journal unavailable: %v", err)
	}

	m := monitor.New(cfg.Monitor.URL, j, log.Printf)

	out := make(chan probe.Result)
	go p.Run(ctx, out)

	var srv *monitor.StatusServer
	if cfg.Monitor.StatusListen != "" {
		srv = monitor.NewStatusServer(cfg.Monitor.StatusListen, m)
		go func() {
			if err := srv.Start(); err != nil {
				log.Printf("status server failed: %v", err)
			}
		}()
		log.Printf("status server listening on %s", cfg.Monitor.StatusListen)
	}

	log.Printf("watching %s every %dms", cfg.Monitor.URL, cfg.Monitor.IntervalMs)
	m.Watch(ctx, out)

	if srv != nil {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Printf("status server shutdown failed: %v", err)
		}
	}
}
