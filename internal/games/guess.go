package games

import (
	"github.com/talgya/tradewinds/internal/sim"
)

// Number guessing table: pick 1 through 6, a correct guess pays 4x the bid.
const (
	GuessMin         = 1
	GuessMax         = 6
	guessPayoutRatio = 4
)

// GuessResult reports how a round of number guessing went.
type GuessResult struct {
	Target int  `json:"target"`
	Won    bool `json:"won"`
	Payout int  `json:"payout"`
}

// PlayGuess charges the bid, rolls the target, and pays out on a match.
func PlayGuess(ctx *sim.Context, bid, guess int) (GuessResult, error) {
	if bid <= 0 || guess < GuessMin || guess > GuessMax {
		return GuessResult{}, ErrBadPlay
	}
	if !ctx.Wallet.Deduct(bid) {
		return GuessResult{}, ErrNoFunds
	}
	target := GuessMin + ctx.RNG().Intn(GuessMax-GuessMin+1)
	res := GuessResult{Target: target}
	if guess == target {
		res.Won = true
		res.Payout = bid * guessPayoutRatio
		ctx.Wallet.Receive(res.Payout)
	}
	return res, nil
}
