// Headless run of a scenario: reports step throughput, extent and energy drift.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"rigids/internal/sim"
	"rigids/internal/simconfig"
	"rigids/internal/trace"
)

func main() {
	configPath := flag.String("config", simconfig.ConfigPath, "YAML config file")
	frames := flag.Int("frames", 2000, "tick batches to run per scenario")
	seed := flag.Int64("seed", 42, "placement seed")
	tracePath := flag.String("trace", "", "write a per-frame trace of the last scenario to this file")
	flag.Parse()

	file, err := simconfig.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	file.Seed = *seed
	cfg, err := file.SimConfig()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}

	for id := range cfg.Scenarios {
		cfg.Scenario = id
		stress(cfg, *frames)
	}

	if *tracePath != "" {
		writeTrace(cfg, *frames, *tracePath)
	}
}

func stress(cfg sim.Config, frames int) {
	loop, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("Sim: %v", err)
	}
	w := loop.World()
	var startEnergy float64
	loop.OnReset.AddListener(func(int) {
		startEnergy = w.TotalKineticEnergy()
	})
	if err := loop.Reset(); err != nil {
		log.Fatalf("Sim: %v", err)
	}

	start := time.Now()
	ticks := 0
	for i := 0; i < frames; i++ {
		ticks += loop.RunBatch()
	}
	elapsed := time.Since(start)

	ext := w.Extent()
	perTick := time.Duration(0)
	if ticks > 0 {
		perTick = elapsed / time.Duration(ticks)
	}
	outside := 0
	for _, b := range w.Bodies {
		if w.Resolver.Penetrating(b) {
			outside++
		}
	}
	fmt.Printf("%-10s %3d bodies: %7d ticks (%.2fs sim) in %8v (%6v/tick) | extent [%.3f,%.3f]x[%.3f,%.3f] | %d touching walls | KE %.4f -> %.4f\n",
		cfg.Scenarios[cfg.Scenario].Name, len(w.Bodies), ticks, float64(ticks)*w.Dt(), elapsed.Round(time.Millisecond), perTick,
		ext.X.Lo, ext.X.Hi, ext.Y.Lo, ext.Y.Hi, outside, startEnergy, w.TotalKineticEnergy())
}

func writeTrace(cfg sim.Config, frames int, path string) {
	loop, err := sim.New(cfg)
	if err != nil {
		log.Fatalf("Sim: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("Trace: %v", err)
	}
	err = trace.Record(context.Background(), loop, frames, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Fatalf("Trace: %s: %v", path, err)
	}
	log.Printf("Trace: wrote %d frames of %q to %s", frames, cfg.Scenarios[cfg.Scenario].Name, path)
}
