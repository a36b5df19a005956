// arenad streams live encounters to spectators: every websocket connection
// gets its own seeded encounter, driven at the configured tick rate, with
// each combat event pushed as one JSON frame.
package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"arenasim/internal/combat"
	"arenasim/internal/config"
	"arenasim/internal/sim"
	"arenasim/internal/util"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to the TOML service config (empty uses defaults)")
	flag.Parse()

	cfg, err := config.LoadService(cfgPath)
	if err != nil {
		slog.Error("load service config", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}))

	party, enemies, scenario, err := config.LoadAll(cfg.Server.ConfigDir)
	if err != nil {
		logger.Error("load encounter config", "dir", cfg.Server.ConfigDir, "err", err)
		os.Exit(1)
	}

	srv := &streamServer{
		cfg:      cfg,
		logger:   logger,
		party:    party,
		enemies:  enemies,
		scenario: scenario,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/ws", srv.handleWS)

	logger.Info("arenad listening", "addr", cfg.Server.BindAddress, "tick_rate", cfg.Server.TickRate)
	if err := http.ListenAndServe(cfg.Server.BindAddress, mux); err != nil {
		logger.Error("serve", "err", err)
		os.Exit(1)
	}
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type streamServer struct {
	cfg      config.ServiceConfig
	logger   *slog.Logger
	party    *config.PartyConfig
	enemies  *config.EnemiesConfig
	scenario *config.ScenarioConfig
	upgrader websocket.Upgrader
	connSeq  atomic.Int64
}

func (s *streamServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	seq := s.connSeq.Add(1)
	seed := s.scenario.Seed + seq
	s.logger.Info("spectator connected", "remote", r.RemoteAddr, "seed", seed)

	party, err := sim.BuildParty(s.party, s.scenario.Party)
	if err != nil {
		s.logger.Error("build party", "err", err)
		return
	}
	enemies, err := sim.BuildEnemies(s.enemies, s.scenario.Enemies)
	if err != nil {
		s.logger.Error("build enemies", "err", err)
		return
	}

	mgr := combat.NewManager(util.New(seed))
	sim.AttachBasicAttackDriver(mgr)

	// Events pile up during a tick and flush afterwards; the single driving
	// goroutine is the only writer, so no lock is needed on pending.
	var pending []combat.CombatEvent
	for _, typ := range combat.EventTypes() {
		mgr.On(typ, func(ev combat.CombatEvent) { pending = append(pending, ev) })
	}

	// Reader goroutine only watches for the spectator going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	mgr.StartCombat(party, enemies)
	if !s.flush(conn, &pending) {
		return
	}

	dt := s.cfg.Server.TickRate.Seconds()
	ticker := time.NewTicker(s.cfg.Server.TickRate)
	defer ticker.Stop()

	elapsed := 0.0
	for {
		select {
		case <-done:
			s.logger.Info("spectator left", "remote", r.RemoteAddr)
			return
		case <-ticker.C:
			mgr.Update(dt)
			elapsed += dt
			if !s.flush(conn, &pending) {
				return
			}
			if mgr.State().Terminal() || elapsed >= s.scenario.MaxTime {
				rewards := mgr.CalculateRewards()
				final := combat.CombatEvent{Type: "RESULT", Data: map[string]any{
					"final":    mgr.State(),
					"duration": mgr.Elapsed(),
					"rewards":  rewards,
				}}
				pending = append(pending, final)
				s.flush(conn, &pending)
				s.logger.Info("encounter finished", "remote", r.RemoteAddr, "state", mgr.State())
				return
			}
		}
	}
}

// flush writes the queued events as individual JSON frames and clears the
// queue. Returns false once the connection is gone.
func (s *streamServer) flush(conn *websocket.Conn, pending *[]combat.CombatEvent) bool {
	for _, ev := range *pending {
		conn.SetWriteDeadline(time.Now().Add(s.cfg.Server.WriteWait))
		if err := conn.WriteJSON(ev); err != nil {
			s.logger.Warn("write failed", "err", err)
			return false
		}
	}
	*pending = (*pending)[:0]
	return true
}
