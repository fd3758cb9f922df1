package core

import (
	"log"
	"sync/atomic"

	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/automoto/laserbeam-mp/shared/collision"
	"github.com/automoto/laserbeam-mp/shared/messages"
	"github.com/automoto/laserbeam-mp/shared/netcomponents"
	"github.com/automoto/laserbeam-mp/shared/turret"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Options configures a Server.
type Options struct {
	Name            string
	Version         string // Required client version (empty = accept any)
	TickRate        int
	MaxClients      int
	ResetDelayTicks int
}

// DefaultOptions returns options taken from config.Server.
func DefaultOptions() Options {
	return Options{
		Name:            cfg.Server.Name,
		Version:         cfg.Server.Version,
		TickRate:        cfg.Server.TickRate,
		MaxClients:      cfg.Server.MaxClients,
		ResetDelayTicks: cfg.Server.ResetDelayTicks,
	}
}

// Server runs the authoritative arena simulation. All world state is owned by
// the game loop goroutine; router callbacks only enqueue commands.
type Server struct {
	opts      Options
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	arena      *ServerArena
	body       turret.Body
	datablocks []messages.LaserDataBlock

	turrets         map[donburi.Entity]*TurretPhysics
	colliderTurrets map[collision.ObjectID]donburi.Entity
	lasers          map[uint32]*LaserState
	nextLaserID     uint32

	arenaEntity donburi.Entity
	arenaState  netcomponents.ArenaState
	resetTimer  int
	tick        uint32

	peers       map[string]*peerState
	playerCount atomic.Int32
	commands    chan command
	done        chan struct{}
	synced      bool
}

// NewServer creates a server for the given arena.
func NewServer(opts Options, arena *ServerArena) *Server {
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.Server.TickRate
	}

	s := &Server{
		opts:  opts,
		world: donburi.NewWorld(),
		arena: arena,
		body: turret.Body{
			HalfWidth:    cfg.Turret.HalfWidth,
			BarrelLength: cfg.Turret.BarrelLength,
			BarrelSpread: cfg.Turret.BarrelSpread,
			Slots:        cfg.Laser.MuzzleSlots,
		},
		turrets:         make(map[donburi.Entity]*TurretPhysics),
		colliderTurrets: make(map[collision.ObjectID]donburi.Entity),
		lasers:          make(map[uint32]*LaserState),
		peers:           make(map[string]*peerState),
		commands:        make(chan command, cfg.Server.CommandBuffer),
		done:            make(chan struct{}),
	}
	s.loop = NewGameLoop(s, opts.TickRate)
	s.datablocks = packDatablocks(arena.Datablocks)

	s.arenaEntity = s.world.Create(netcomponents.NetArenaState)
	netcomponents.NetArenaState.Set(s.world.Entry(s.arenaEntity), &netcomponents.NetArenaStateData{
		Arena: arena.Arena.Name,
		State: netcomponents.ArenaStateWaiting,
	})

	s.spawnTurrets()
	return s
}

// Start enables network sync and begins serving on the given port.
func (s *Server) Start(port uint) error {
	srvsync.UseEsync(s.world)
	s.enableSync()
	s.setupRouterCallbacks()

	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
	close(s.done)
}

// enableSync marks every existing networked entity for esync. Entities
// spawned later are synced as they are created.
func (s *Server) enableSync() {
	s.synced = true

	if err := srvsync.NetworkSync(s.world, &s.arenaEntity, netcomponents.NetArenaState); err != nil {
		log.Printf("[server] failed to sync arena state: %v", err)
	}
	for entity := range s.turrets {
		s.syncTurret(entity)
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] client %s disconnected", client.Id())
		}
		s.enqueue(leaveCommand{id: client.Id()})
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueue(joinCommand{peer: client, req: req})
	})

	router.On(func(client *router.NetworkClient, req messages.FireRequest) {
		s.enqueue(fireCommand{id: client.Id(), req: req})
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

// Step runs one simulation tick. The game loop calls it before syncing.
func (s *Server) Step() {
	s.ProcessCommands()
	s.tick++

	s.updateTurrets()
	s.updateLasers()
	s.destroyFlaggedTurrets()
	s.destroyFlaggedLasers()
	s.updateArenaState()

	s.writeNetState()
	s.replicate()
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// Tick returns the number of simulated ticks.
func (s *Server) Tick() uint32 {
	return s.tick
}

// PlayerCount returns the number of joined clients. Safe from any goroutine.
func (s *Server) PlayerCount() int {
	return int(s.playerCount.Load())
}

// LaserCount returns the number of live lasers.
func (s *Server) LaserCount() int {
	return len(s.lasers)
}
