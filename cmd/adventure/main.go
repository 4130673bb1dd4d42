// Package main plays the campus adventure in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/campus-adventure/internal/config"
	"github.com/cory-johannsen/campus-adventure/internal/frontend/tui"
	"github.com/cory-johannsen/campus-adventure/internal/game/command"
	"github.com/cory-johannsen/campus-adventure/internal/game/scenario"
	"github.com/cory-johannsen/campus-adventure/internal/gameserver"
	"github.com/cory-johannsen/campus-adventure/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "optional path to configuration file")
	scenarioPath := flag.String("scenario", "", "scenario manifest (overrides game.scenario)")
	maxMoves := flag.Int("moves", 0, "move budget (overrides the scenario when positive)")
	logFile := flag.String("log", "adventure.log", "file receiving log output")
	flag.Parse()

	if err := run(*configPath, *scenarioPath, *maxMoves, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, scenarioPath string, maxMoves int, logFile string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if scenarioPath != "" {
		cfg.Game.Scenario = scenarioPath
	}
	if maxMoves > 0 {
		cfg.Game.MaxMoves = maxMoves
	}
	// Log lines would corrupt the alternate screen.
	cfg.Logging.File = logFile

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	sc, err := scenario.LoadFromFile(cfg.Game.Scenario)
	if err != nil {
		return err
	}
	logger.Info("starting terminal game", zap.String("scenario", sc.Name))

	svc := gameserver.NewGameService(command.DefaultRegistry(), logger)
	return tui.Run(sc, cfg.Game.MaxMoves, svc, cfg.UI.WrapWidth)
}
