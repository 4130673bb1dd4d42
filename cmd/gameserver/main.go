// Package main serves the campus adventure over Telnet. Every connection
// plays its own independent game.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/campus-adventure/internal/config"
	"github.com/cory-johannsen/campus-adventure/internal/frontend/handlers"
	"github.com/cory-johannsen/campus-adventure/internal/frontend/telnet"
	"github.com/cory-johannsen/campus-adventure/internal/game/command"
	"github.com/cory-johannsen/campus-adventure/internal/game/scenario"
	"github.com/cory-johannsen/campus-adventure/internal/game/session"
	"github.com/cory-johannsen/campus-adventure/internal/gameserver"
	"github.com/cory-johannsen/campus-adventure/internal/observability"
	"github.com/cory-johannsen/campus-adventure/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	sc, err := scenario.LoadFromFile(cfg.Game.Scenario)
	if err != nil {
		logger.Fatal("loading scenario", zap.Error(err))
	}
	// Build one world up front so broken content fails at startup rather
	// than on the first connection.
	if _, err := sc.BuildWorld(); err != nil {
		logger.Fatal("building world", zap.Error(err))
	}
	logger.Info("scenario loaded",
		zap.String("scenario", sc.Name),
		zap.Int("max_moves", sc.MaxMoves),
		zap.Int("max_moves_override", cfg.Game.MaxMoves),
	)

	sessions := session.NewManager()
	svc := gameserver.NewGameService(command.DefaultRegistry(), logger)
	renderer := handlers.TextRenderer{Color: cfg.UI.Color, Width: cfg.UI.WrapWidth}
	gameHandler := handlers.NewGameHandler(sc, cfg.Game.MaxMoves, svc, sessions, renderer, logger)
	acceptor := telnet.NewAcceptor(cfg.Telnet, gameHandler, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("telnet", &server.FuncService{
		StartFn: acceptor.ListenAndServe,
		StopFn:  acceptor.Stop,
	})

	stopReport := make(chan struct{})
	lifecycle.Add("session-report", &server.FuncService{
		StartFn: func() error {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					logger.Info("active sessions",
						zap.Int("count", sessions.Count()),
						zap.Strings("players", sessions.PlayerNames()),
					)
				case <-stopReport:
					return nil
				}
			}
		},
		StopFn: func() { close(stopReport) },
	})

	logger.Info("game server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("telnet_addr", cfg.Telnet.Addr()),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
