package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"rigids/internal/game"
	"rigids/internal/sim"
	"rigids/internal/simconfig"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", simconfig.ConfigPath, "YAML config file")
	scenariosPath := flag.String("scenarios", "", "extra YAML scenario list")
	scenario := flag.Int("scenario", -1, "scenario to start with (overrides config)")
	seed := flag.Int64("seed", 0, "placement seed (overrides config when non-zero)")
	writeConfig := flag.Bool("write-config", false, "write the effective config and exit")
	flag.Parse()

	file, err := simconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *scenario >= 0 {
		file.Scenario = *scenario
	}
	if *seed != 0 {
		file.Seed = *seed
	}
	if *writeConfig {
		if err := simconfig.Save(*configPath, file); err != nil {
			log.Fatalf("Config: %v", err)
		}
		log.Printf("Config: wrote %s", *configPath)
		return
	}

	cfg, err := file.SimConfig()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *scenariosPath != "" {
		extra, err := simconfig.LoadScenarios(*scenariosPath)
		if err != nil {
			log.Fatalf("Config: %v", err)
		}
		cfg.Scenarios = append(cfg.Scenarios, extra...)
	}

	loop, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("Sim: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := game.New(loop, file.Window).Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Game: %v", err)
	}
}
