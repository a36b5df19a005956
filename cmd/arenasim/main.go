package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"arenasim/internal/config"
	"arenasim/internal/sim"
)

func main() {
	var cfgDir, out string
	var seed int64
	var n, workers int
	var saveLog bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir with party.yaml, enemies.yaml, scenario.yaml")
	flag.StringVar(&out, "out", "out.json", "output file (single result) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 0, "seed override (0 keeps the scenario seed)")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.IntVar(&workers, "workers", 8, "batch worker count")
	flag.BoolVar(&saveLog, "log", true, "save the full event log when n==1")
	flag.Parse()

	party, enemies, scenario, err := config.LoadAll(cfgDir)
	if err != nil {
		slog.Error("load config", "dir", cfgDir, "err", err)
		os.Exit(1)
	}

	if n <= 1 {
		runner, err := sim.NewRunner(party, enemies, scenario, seed, saveLog)
		if err != nil {
			slog.Error("build runner", "err", err)
			os.Exit(1)
		}
		res := runner.Run()
		if err := os.WriteFile(out, sim.MarshalPretty(res), 0o644); err != nil {
			slog.Error("write result", "path", out, "err", err)
			os.Exit(1)
		}
		fmt.Printf("Single run finished. Win=%v, T=%.2fs, DPS=%.1f -> %s\n", res.Win, res.Duration, res.DPS, out)
		return
	}

	if seed != 0 {
		scenario.Seed = seed
	}
	summary, err := sim.RunBatch(party, enemies, scenario, n, workers)
	if err != nil {
		slog.Error("batch", "err", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, sim.MarshalPretty(summary), 0o644); err != nil {
		slog.Error("write summary", "path", out, "err", err)
		os.Exit(1)
	}
	fmt.Printf("Batch %d done. WinRate=%.2f, AvgT=%.2fs -> %s\n", n, summary.WinRate, summary.AvgDuration, out)
}
