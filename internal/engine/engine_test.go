package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/tradewinds/internal/catalog"
	"github.com/talgya/tradewinds/internal/games"
	"github.com/talgya/tradewinds/internal/sim"
)

func newManualRig(seed int64) (*Engine, *ManualScheduler) {
	clk := NewManualClock(time.Unix(1_700_000_000, 0))
	sched := NewManualScheduler(clk)
	ctx := sim.NewContext(catalog.Default(), seed, clk)
	e := New(ctx, games.NewLottery(ctx), sched)
	return e, sched
}

func TestManualSchedulerOrdering(t *testing.T) {
	clk := NewManualClock(time.Unix(0, 0))
	s := NewManualScheduler(clk)

	var order []string
	s.Schedule(2*time.Second, func() { order = append(order, "b") })
	s.Schedule(time.Second, func() { order = append(order, "a") })
	s.Schedule(3*time.Second, func() { order = append(order, "c") })

	s.Advance(2 * time.Second)
	assert.Equal(t, []string{"a", "b"}, order)

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestManualSchedulerCancel(t *testing.T) {
	clk := NewManualClock(time.Unix(0, 0))
	s := NewManualScheduler(clk)

	ran := false
	task := s.Schedule(time.Second, func() { ran = true })
	s.Cancel(task)
	s.Advance(5 * time.Second)
	assert.False(t, ran)
}

func TestManualSchedulerRunsRescheduledCallbacks(t *testing.T) {
	clk := NewManualClock(time.Unix(0, 0))
	s := NewManualScheduler(clk)

	count := 0
	var loop func()
	loop = func() {
		count++
		s.Schedule(time.Second, loop)
	}
	s.Schedule(time.Second, loop)

	s.Advance(10 * time.Second)
	assert.Equal(t, 10, count)
}

func TestTimerSchedulerRunsTasks(t *testing.T) {
	s := NewTimerScheduler(RealClock{})
	done := make(chan struct{})
	go s.Run()
	defer s.Stop()

	s.Schedule(10*time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled task never ran")
	}
}

func TestTimerSchedulerCancel(t *testing.T) {
	s := NewTimerScheduler(RealClock{})
	go s.Run()
	defer s.Stop()

	ran := make(chan struct{}, 1)
	task := s.Schedule(50*time.Millisecond, func() { ran <- struct{}{} })
	s.Cancel(task)

	select {
	case <-ran:
		t.Fatal("cancelled task ran")
	case <-time.After(200 * time.Millisecond):
	}
}

// RunOn work must execute on the loop goroutine, mutually exclusive with
// scheduled callbacks. The counter here is deliberately unsynchronized:
// under the race detector, any overlap between the rescheduling loop and
// the RunOn calls fails the test.
func TestTimerSchedulerRunOnSerializesWithCallbacks(t *testing.T) {
	s := NewTimerScheduler(RealClock{})
	go s.Run()
	defer s.Stop()

	counter := 0
	var loop func()
	loop = func() {
		counter++
		s.Schedule(time.Millisecond, loop)
	}
	s.Schedule(0, loop)

	for i := 0; i < 50; i++ {
		s.RunOn(func() { counter++ })
	}

	var final int
	s.RunOn(func() { final = counter })
	assert.GreaterOrEqual(t, final, 50)
}

func TestTimerSchedulerRunOnAfterStop(t *testing.T) {
	s := NewTimerScheduler(RealClock{})
	go s.Run()
	s.Stop()

	ran := false
	s.RunOn(func() { ran = true })
	assert.True(t, ran)
}

func TestManualSchedulerRunOnIsImmediate(t *testing.T) {
	s := NewManualScheduler(NewManualClock(time.Unix(0, 0)))
	ran := false
	s.RunOn(func() { ran = true })
	assert.True(t, ran)
}

func TestEngineLoopsPopulateMarket(t *testing.T) {
	e, sched := newManualRig(1)
	e.Start()

	sched.Advance(30 * time.Second)

	assert.NotEmpty(t, e.Sim.Listings)
	assert.NotEmpty(t, e.Sim.Demands)
	assert.NotEmpty(t, e.Sim.VendorQuotes)
	assert.NotZero(t, e.MarketSpawns)
	assert.NotZero(t, e.DemandSpawns)

	// Decay families run on fixed periods.
	assert.Equal(t, uint64(30), e.MarketTicks)
	assert.Equal(t, uint64(60), e.DemandTicks)
	assert.Equal(t, 30.0, e.Elapsed())
}

func TestEngineRespectsCapacities(t *testing.T) {
	e, sched := newManualRig(2)
	e.Start()

	sched.Advance(10 * time.Minute)

	assert.LessOrEqual(t, len(e.Sim.Listings), sim.MaxListings)
	assert.LessOrEqual(t, len(e.Sim.Demands), sim.MaxDemands)

	// Everything that has been through a decay pass is still viable.
	now := e.Sim.Now()
	for _, l := range e.Sim.Listings {
		if l.AvailableAt <= now {
			assert.Greater(t, l.Amount, 0)
			assert.Greater(t, l.NotAvailableTimer, 0.0)
		}
	}
	for _, d := range e.Sim.Demands {
		assert.Greater(t, d.NotAvailableTimer, 0.0)
	}
}

func TestEngineStopHaltsLoops(t *testing.T) {
	e, sched := newManualRig(3)
	e.Start()
	sched.Advance(5 * time.Second)
	ticksAtStop := e.MarketTicks
	require.NotZero(t, ticksAtStop)

	e.Stop()
	sched.Advance(30 * time.Second)

	assert.Equal(t, ticksAtStop, e.MarketTicks)
}

func TestEngineLotteryDrawCadence(t *testing.T) {
	e, sched := newManualRig(4)
	e.Start()

	sched.Advance(90 * time.Second)
	assert.Equal(t, uint64(3), e.LotteryDraws)
}
