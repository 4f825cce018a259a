// Command marketsim runs the Tradewinds market simulation service.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talgya/tradewinds/internal/api"
	"github.com/talgya/tradewinds/internal/config"
	"github.com/talgya/tradewinds/internal/econ"
	"github.com/talgya/tradewinds/internal/engine"
	"github.com/talgya/tradewinds/internal/games"
	"github.com/talgya/tradewinds/internal/history"
	"github.com/talgya/tradewinds/internal/sim"
	"github.com/talgya/tradewinds/internal/store"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("Tradewinds — living market simulation")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// ── Persistence ──────────────────────────────────────────────────
	st, err := store.New(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open data dir", "error", err)
		os.Exit(1)
	}

	var db *history.DB
	if cfg.HistoryPath != "" {
		db, err = history.Open(cfg.HistoryPath)
		if err != nil {
			slog.Warn("trade history disabled", "error", err)
			db = nil
		} else {
			defer db.Close()
			db.SaveMeta("seed", fmt.Sprintf("%d", seed))
			slog.Info("trade history opened", "path", cfg.HistoryPath)
		}
	}

	// ── Simulation ───────────────────────────────────────────────────
	clock := engine.RealClock{}
	cat := st.LoadCatalog()
	ctx := sim.NewContext(cat, seed, clock)
	st.LoadInto(ctx)

	slog.Info("ledger loaded",
		"catalog_items", len(cat.Items),
		"listings", len(ctx.Listings),
		"demands", len(ctx.Demands),
		"inventory", len(ctx.Inventory),
		"wallet", ctx.Wallet.String(),
	)

	lottery := games.NewLottery(ctx)
	sched := engine.NewTimerScheduler(clock)
	eng := engine.New(ctx, lottery, sched)
	eng.AdjustDemandsWithMarket = cfg.AdjustDemandsWithMarket

	// ── HTTP API ─────────────────────────────────────────────────────
	if cfg.AdminKey == "" {
		slog.Warn("TRADEWINDS_ADMIN_KEY not set — maintenance endpoints will be disabled")
	}

	apiServer := &api.Server{
		Sim:       ctx,
		Eng:       eng,
		Lottery:   lottery,
		DB:        db,
		Sentiment: econ.NewSentiment(seed),
		Port:      cfg.ServerPort,
		AdminKey:  cfg.AdminKey,
	}
	apiServer.Start()

	// ── Start ────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
		sched.Stop()
	}()

	// Periodic ledger autosave.
	var autosave func()
	autosave = func() {
		if err := st.SaveAll(ctx); err != nil {
			slog.Error("autosave failed", "error", err)
		}
		sched.Schedule(time.Minute, autosave)
	}
	sched.Schedule(time.Minute, autosave)

	eng.Start()
	fmt.Printf("Market is open: %d listings, %d demands. API: http://localhost:%d/api/v1/status\n",
		len(ctx.Listings), len(ctx.Demands), cfg.ServerPort)
	fmt.Println("Running... (Ctrl+C to stop)")

	sched.Run()

	// Final save on shutdown.
	slog.Info("final save...")
	if err := st.SaveAll(ctx); err != nil {
		slog.Error("final save failed", "error", err)
	}
	fmt.Println("Market closed. Ledger saved.")
}

func logLevel(s string) slog.Level {
	switch s {
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
