package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"DrawPad/internal/config"
	drawnet "DrawPad/internal/net"
	"DrawPad/internal/pad"
	"DrawPad/internal/state"
	"DrawPad/internal/ui"
)

func main() {
	configPath := flag.String("config", config.Path(), "path to the TOML config file")
	web := flag.String("web", "", "serve the browser front-end on this address instead of opening a window")
	advertise := flag.Bool("advertise", false, "announce the web front-end over mDNS")
	discover := flag.Duration("discover", 0, "look for DrawPad servers on the network for this long, then exit")
	debug := flag.Bool("debug", false, "log every pad event")
	flag.Parse()

	if *debug {
		pad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	log.Printf("[MAIN] DrawPad process %s", state.ProcessID())
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("[CONFIG] %v, using defaults", err)
	}

	switch {
	case *discover > 0:
		runDiscover(*discover)
	case *web != "" || *advertise:
		if *web != "" {
			cfg.Web.Listen = *web
		}
		cfg.Web.Advertise = cfg.Web.Advertise || *advertise
		runWeb(cfg)
	default:
		log.Println("Starting desktop board")
		if err := ui.RunApp(cfg); err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
	}
}

func runWeb(cfg *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shareURL, port, err := drawnet.ShareURL(cfg.Web.Listen)
	if err != nil {
		log.Fatalf("Invalid listen address %q: %v", cfg.Web.Listen, err)
	}

	if cfg.Web.Advertise {
		server, err := drawnet.Advertise(port, cfg.Title)
		if err != nil {
			log.Printf("[MDNS] advertise failed: %v", err)
		} else {
			defer server.Shutdown()
			log.Printf("[MDNS] advertising on port %d", port)
		}
	}

	log.Printf("Open %s in a browser", shareURL)
	if err := drawnet.NewServer(cfg).ListenAndServe(ctx, cfg.Web.Listen); err != nil {
		log.Fatalf("Web server stopped: %v", err)
	}
}

func runDiscover(timeout time.Duration) {
	log.Printf("[MDNS] browsing for %s", timeout)
	found := 0
	err := drawnet.Browse(timeout, func(p drawnet.Peer) {
		found++
		fmt.Printf("%s\t%s\n", p.URL(), p.Name)
	})
	if err != nil {
		log.Fatalf("[MDNS] browse failed: %v", err)
	}
	if found == 0 {
		log.Println("[MDNS] no servers found")
	}
}
