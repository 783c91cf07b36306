package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"roulette_backend/internal/config/env"
	"roulette_backend/internal/roulette"
	"roulette_backend/internal/simulate"
	"runtime"

	_ "go.uber.org/automaxprocs"
)

func main() {
	var (
		cfgPath  = flag.String("config", "config.yaml", "roulette tables")
		sessions = flag.Int("sessions", 1000, "number of sessions")
		spins    = flag.Int("spins", 100, "spins per session")
		balance  = flag.Int("balance", 1000, "starting balance of every session")
		bonus    = flag.Bool("bonus", false, "claim daily bonus at session start")
		withdraw = flag.Int("withdraw-from", 0, "withdraw items worth at least this much")
		workers  = flag.Int("workers", runtime.GOMAXPROCS(0), "parallel sessions")
		quiet    = flag.Bool("quiet", false, "hide progress bar")
	)
	flag.Parse()

	cfg, err := env.NewRouletteConfigFromYAML(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	engine, err := roulette.NewEngine(cfg.Items(), cfg.Bonuses(), roulette.Rules{
		SpinCost:      cfg.SpinCost(),
		CreditWins:    cfg.CreditWins(),
		BonusCooldown: cfg.BonusCooldown(),
	})
	if err != nil {
		log.Fatalf("invalid roulette tables: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simCfg := simulate.Config{
		Engine:          engine,
		Sessions:        *sessions,
		SpinsPerSession: *spins,
		StartingBalance: *balance,
		ClaimBonus:      *bonus,
		WithdrawFrom:    *withdraw,
		Workers:         *workers,
	}
	if !*quiet {
		simCfg.Progress = os.Stderr
	}

	report, err := simulate.Run(ctx, simCfg)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}
	report.Print(os.Stdout, engine)
}
