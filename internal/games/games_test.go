package games

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/tradewinds/internal/catalog"
	"github.com/talgya/tradewinds/internal/econ"
	"github.com/talgya/tradewinds/internal/sim"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Unix(1_700_000_000, 0) }

func newCtx(seed int64) *sim.Context {
	return sim.NewContext(catalog.Default(), seed, fixedClock{})
}

func TestLotteryTicketLifecycle(t *testing.T) {
	ctx := newCtx(1)
	lot := NewLottery(ctx)

	require.NoError(t, lot.BuyTicket())
	assert.True(t, lot.TicketHeld())
	assert.Equal(t, 40, ctx.Wallet.TotalCopper())

	assert.ErrorIs(t, lot.BuyTicket(), ErrAlreadyEntered)
	assert.Equal(t, 40, ctx.Wallet.TotalCopper())

	// Ticket is spent on draw regardless of outcome.
	lot.Draw()
	assert.False(t, lot.TicketHeld())
	require.NoError(t, lot.BuyTicket())
}

func TestLotteryNoTicketNoDraw(t *testing.T) {
	ctx := newCtx(2)
	lot := NewLottery(ctx)
	prize, won := lot.Draw()
	assert.Zero(t, prize)
	assert.False(t, won)
	assert.Equal(t, 50, ctx.Wallet.TotalCopper())
}

func TestLotteryInsufficientFunds(t *testing.T) {
	ctx := newCtx(3)
	ctx.Wallet = econ.Wallet{Copper: 5}
	lot := NewLottery(ctx)
	assert.ErrorIs(t, lot.BuyTicket(), ErrNoFunds)
	assert.Equal(t, 5, ctx.Wallet.TotalCopper())
}

func TestLotteryEventuallyPaysOut(t *testing.T) {
	ctx := newCtx(4)
	ctx.Wallet = econ.Wallet{Gold: 25} // covers 20k tickets
	lot := NewLottery(ctx)

	for i := 0; i < 20_000; i++ {
		require.NoError(t, lot.BuyTicket())
		if prize, won := lot.Draw(); won {
			assert.GreaterOrEqual(t, prize, 10_000)
			assert.LessOrEqual(t, prize, 50_000)
			return
		}
	}
	t.Fatal("no win in 20000 draws at 1-in-1000 odds")
}

func TestOpenBoxTiers(t *testing.T) {
	ctx := newCtx(5)
	ctx.Wallet = econ.Wallet{Gold: 100}
	start := ctx.Wallet.TotalCopper()

	spent := 0
	for _, tier := range []BoxTier{CopperBox, SilverBox, GoldBox} {
		price, ok := BoxPrice(tier)
		require.True(t, ok)

		r, err := OpenBox(ctx, tier)
		require.NoError(t, err)
		spent += price

		spec := boxSpecs[tier]
		assert.Contains(t, spec.counts, r.Count)
		_, found := ctx.Catalog.ItemByID(r.ItemID)
		assert.True(t, found)
	}
	assert.Equal(t, start-spent, ctx.Wallet.TotalCopper())
	assert.NotEmpty(t, ctx.Inventory)
}

func TestOpenBoxRejections(t *testing.T) {
	ctx := newCtx(6)
	_, err := OpenBox(ctx, BoxTier("diamond"))
	assert.ErrorIs(t, err, ErrBadPlay)

	ctx.Wallet = econ.Wallet{}
	_, err = OpenBox(ctx, CopperBox)
	assert.ErrorIs(t, err, ErrNoFunds)
	assert.Empty(t, ctx.Inventory)
}

func TestPlayGuessBounds(t *testing.T) {
	ctx := newCtx(7)

	_, err := PlayGuess(ctx, 0, 3)
	assert.ErrorIs(t, err, ErrBadPlay)
	_, err = PlayGuess(ctx, 10, 0)
	assert.ErrorIs(t, err, ErrBadPlay)
	_, err = PlayGuess(ctx, 10, 7)
	assert.ErrorIs(t, err, ErrBadPlay)
	assert.Equal(t, 50, ctx.Wallet.TotalCopper())

	_, err = PlayGuess(ctx, 100, 3)
	assert.ErrorIs(t, err, ErrNoFunds)
}

func TestPlayGuessPayout(t *testing.T) {
	ctx := newCtx(8)
	ctx.Wallet = econ.Wallet{Gold: 1}

	wonOnce := false
	for i := 0; i < 100; i++ {
		before := ctx.Wallet.TotalCopper()
		res, err := PlayGuess(ctx, 10, 4)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Target, GuessMin)
		assert.LessOrEqual(t, res.Target, GuessMax)
		if res.Won {
			wonOnce = true
			assert.Equal(t, 40, res.Payout)
			assert.Equal(t, before-10+40, ctx.Wallet.TotalCopper())
		} else {
			assert.Equal(t, before-10, ctx.Wallet.TotalCopper())
		}
	}
	assert.True(t, wonOnce, "a hundred rounds at 1-in-6 should win at least once")
}
