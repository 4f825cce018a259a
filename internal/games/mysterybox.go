package games

import (
	"github.com/talgya/tradewinds/internal/sim"
)

// BoxTier selects one of the three mystery box price classes.
type BoxTier string

const (
	CopperBox BoxTier = "copper"
	SilverBox BoxTier = "silver"
	GoldBox   BoxTier = "gold"
)

type boxSpec struct {
	price   int // copper
	counts  []int
	weights []float64
}

// Tier odds: the cheap outcome is likeliest, the jackpot rare.
var boxSpecs = map[BoxTier]boxSpec{
	CopperBox: {price: 10, counts: []int{1, 2, 30}, weights: []float64{0.6, 0.3, 0.1}},
	SilverBox: {price: 1_000, counts: []int{5, 50, 250}, weights: []float64{0.6, 0.3, 0.1}},
	GoldBox:   {price: 100_000, counts: []int{200, 400, 10_000}, weights: []float64{0.7, 0.3, 0.05}},
}

// BoxReward is what fell out of a mystery box.
type BoxReward struct {
	ItemID int    `json:"item_id"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// BoxPrice returns the copper price for a tier, false for unknown tiers.
func BoxPrice(tier BoxTier) (int, bool) {
	spec, ok := boxSpecs[tier]
	if !ok {
		return 0, false
	}
	return spec.price, true
}

// OpenBox charges the tier price, rolls a count by the tier's weights, and
// drops that many of a uniformly random catalog item into the inventory.
func OpenBox(ctx *sim.Context, tier BoxTier) (BoxReward, error) {
	spec, ok := boxSpecs[tier]
	if !ok {
		return BoxReward{}, ErrBadPlay
	}
	if ctx.Catalog.Empty() {
		return BoxReward{}, ErrBadPlay
	}
	if !ctx.Wallet.Deduct(spec.price) {
		return BoxReward{}, ErrNoFunds
	}

	rng := ctx.RNG()
	count := spec.counts[len(spec.counts)-1]
	total := 0.0
	for _, w := range spec.weights {
		total += w
	}
	target := rng.Float64() * total
	for i, w := range spec.weights {
		target -= w
		if target < 0 {
			count = spec.counts[i]
			break
		}
	}

	item := ctx.Catalog.Items[rng.Intn(len(ctx.Catalog.Items))]
	ctx.AddItem(item.ItemID, count)
	return BoxReward{ItemID: item.ItemID, Name: item.Name, Count: count}, nil
}
