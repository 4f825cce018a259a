// Package games implements the gambling parlor: the lottery, mystery
// boxes, and the number guessing table. Every game charges the wallet up
// front and rejects play it cannot pay for, leaving no partial effects.
package games

import (
	"errors"
	"time"

	"github.com/talgya/tradewinds/internal/sim"
)

var (
	ErrAlreadyEntered = errors.New("already holding a ticket this round")
	ErrNoFunds        = sim.ErrInsufficientFunds
	ErrBadPlay        = sim.ErrInvalidAmount
)

// Lottery odds and payout.
const (
	LotteryTicketPrice = 10 // copper
	LotteryDrawPeriod  = 30 * time.Second
	lotteryWinOdds     = 1000 // 1 in N
	lotteryPrizeMin    = 10_000
	lotteryPrizeMax    = 50_000
)

// Lottery sells one ticket per round and draws on a fixed period.
type Lottery struct {
	ctx        *sim.Context
	ticketHeld bool
}

// NewLottery attaches a lottery to the simulation's wallet and RNG.
func NewLottery(ctx *sim.Context) *Lottery {
	return &Lottery{ctx: ctx}
}

// BuyTicket charges the ticket price. One ticket per round.
func (l *Lottery) BuyTicket() error {
	if l.ticketHeld {
		return ErrAlreadyEntered
	}
	if !l.ctx.Wallet.Deduct(LotteryTicketPrice) {
		return ErrNoFunds
	}
	l.ticketHeld = true
	return nil
}

// TicketHeld reports whether the player is in the current round.
func (l *Lottery) TicketHeld() bool {
	return l.ticketHeld
}

// Draw settles the round. A held ticket wins the jackpot with 1-in-1000
// odds; win or lose, the ticket is spent.
func (l *Lottery) Draw() (prize int, won bool) {
	if !l.ticketHeld {
		return 0, false
	}
	l.ticketHeld = false
	rng := l.ctx.RNG()
	if rng.Intn(lotteryWinOdds) != 0 {
		return 0, false
	}
	prize = lotteryPrizeMin + rng.Intn(lotteryPrizeMax-lotteryPrizeMin+1)
	l.ctx.Wallet.Receive(prize)
	return prize, true
}
