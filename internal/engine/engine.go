package engine

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/talgya/tradewinds/internal/games"
	"github.com/talgya/tradewinds/internal/sim"
)

// Engine registers the market's periodic passes on a scheduler and keeps
// them rescheduling themselves. Each pass family runs independently; no
// ordering is promised between families.
type Engine struct {
	Sim     *sim.Context
	Lottery *games.Lottery

	// When set, every demand decay pass first reprices all demands
	// against the market. Off by default, as shipped.
	AdjustDemandsWithMarket bool

	sched   Scheduler
	running atomic.Bool
	started time.Time

	// Pass counters for the status endpoint.
	MarketSpawns uint64
	MarketTicks  uint64
	DemandSpawns uint64
	DemandTicks  uint64
	LotteryDraws uint64
}

// New wires an engine over the simulation and scheduler.
func New(ctx *sim.Context, lottery *games.Lottery, sched Scheduler) *Engine {
	return &Engine{Sim: ctx, Lottery: lottery, sched: sched}
}

// Start queues the first run of every loop family.
func (e *Engine) Start() {
	if e.running.Swap(true) {
		return
	}
	e.started = e.sched.Now()
	slog.Info("engine started",
		"listings", len(e.Sim.Listings),
		"demands", len(e.Sim.Demands),
		"wallet", e.Sim.Wallet.String())

	e.Sim.RefreshVendorQuotes()
	e.sched.Schedule(e.Sim.NextMarketSpawnDelay(), e.marketSpawnPass)
	e.sched.Schedule(sim.MarketDecayPeriod, e.marketDecayPass)
	e.sched.Schedule(e.Sim.NextDemandSpawnDelay(), e.demandSpawnPass)
	e.sched.Schedule(sim.DemandDecayPeriod, e.demandDecayPass)
	e.sched.Schedule(sim.VendorRefreshPeriod, e.vendorPass)
	if e.Lottery != nil {
		e.sched.Schedule(games.LotteryDrawPeriod, e.lotteryPass)
	}
}

// Stop keeps the loops from rescheduling. Passes already queued fire once
// more and exit immediately. Safe to call from any goroutine.
func (e *Engine) Stop() {
	e.running.Store(false)
	slog.Info("engine stopped")
}

// RunOn executes fn on the scheduler's loop goroutine and waits for it,
// serializing it against the periodic passes. Every HTTP handler read or
// mutation of the simulation goes through here.
func (e *Engine) RunOn(fn func()) {
	e.sched.RunOn(fn)
}

// Elapsed is how long the engine has been running, in seconds.
func (e *Engine) Elapsed() float64 {
	if e.started.IsZero() {
		return 0
	}
	return e.sched.Now().Sub(e.started).Seconds()
}

func (e *Engine) marketSpawnPass() {
	if !e.running.Load() {
		return
	}
	e.MarketSpawns++
	if l := e.Sim.SpawnListing(); l != nil {
		slog.Debug("listing spawned", "id", l.ListingID, "name", l.Name, "price", l.Price, "amount", l.Amount)
	}
	e.sched.Schedule(e.Sim.NextMarketSpawnDelay(), e.marketSpawnPass)
}

func (e *Engine) marketDecayPass() {
	if !e.running.Load() {
		return
	}
	e.MarketTicks++
	e.Sim.DecayMarket()
	e.sched.Schedule(sim.MarketDecayPeriod, e.marketDecayPass)
}

func (e *Engine) demandSpawnPass() {
	if !e.running.Load() {
		return
	}
	e.DemandSpawns++
	if d := e.Sim.SpawnDemand(); d != nil {
		slog.Debug("demand spawned", "id", d.DemandID, "name", d.Name, "buy_price", d.BuyPrice, "max_amount", d.MaxAmount)
	}
	e.sched.Schedule(e.Sim.NextDemandSpawnDelay(), e.demandSpawnPass)
}

func (e *Engine) demandDecayPass() {
	if !e.running.Load() {
		return
	}
	e.DemandTicks++
	e.Sim.DecayDemands(e.AdjustDemandsWithMarket)
	e.sched.Schedule(sim.DemandDecayPeriod, e.demandDecayPass)
}

func (e *Engine) vendorPass() {
	if !e.running.Load() {
		return
	}
	e.Sim.RefreshVendorQuotes()
	e.sched.Schedule(sim.VendorRefreshPeriod, e.vendorPass)
}

func (e *Engine) lotteryPass() {
	if !e.running.Load() {
		return
	}
	e.LotteryDraws++
	if prize, won := e.Lottery.Draw(); won {
		slog.Info("lottery jackpot", "prize", prize, "wallet", e.Sim.Wallet.String())
	}
	e.sched.Schedule(games.LotteryDrawPeriod, e.lotteryPass)
}
