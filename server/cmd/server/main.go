package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/server/core"
	"github.com/automoto/laserbeam-mp/shared/protocol"
)

func main() {
	port := flag.Uint("port", cfg.Server.Port, "Server port")
	tickRate := flag.Int("tickrate", cfg.Server.TickRate, "Server tick rate (updates per second)")
	name := flag.String("name", cfg.Server.Name, "Server display name")
	version := flag.String("version", cfg.Server.Version, "Required client version (empty = accept any)")
	assets := flag.String("assets", cfg.Server.AssetsDir, "Directory holding levels/ and datablocks/")
	arenaName := flag.String("arena", cfg.Server.Arena, "Arena to load from levels/")
	maxClients := flag.Int("maxclients", cfg.Server.MaxClients, "Maximum connected clients (0 = unlimited)")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	arena, err := core.LoadServerArena(*assets, *arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	opts := core.DefaultOptions()
	opts.Name = *name
	opts.Version = *version
	opts.TickRate = *tickRate
	opts.MaxClients = *maxClients
	server := core.NewServer(opts, arena)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting laser arena server %q on port %d (arena: %s, tick rate: %d/s, version: %s)",
		*name, *port, *arenaName, *tickRate, *version)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
