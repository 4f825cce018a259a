package sim

import (
	"math"
	"math/rand"

	"github.com/talgya/tradewinds/internal/catalog"
)

// Price heuristic tuning.
const (
	supplySlope     = 0.5  // how fast abundance suppresses prices
	supplyScale     = 100  // listing count at which suppression maxes out
	scarcitySupply  = 1.8  // supply factor when nothing is on the market
	increaseWeight  = 0.7
	supplyWeight    = 0.3
	priceFloorRatio = 0.3 // adjusted price never drops below 30% of base
)

// AdjustDemandPrice computes what a demand is willing to pay for an item
// given the current market. Listings of the same category pull the price
// up when they trade above base and down when the market is flooded.
// Pure apart from the RNG: same inputs and seed, same price.
func AdjustDemandPrice(base catalog.Item, listings []*MarketListing, rng *rand.Rand) int {
	uniform := func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }

	count := 0
	sum := 0
	for _, l := range listings {
		if l.CategoryID == base.CategoryID {
			count++
			sum += l.Price
		}
	}

	avg := float64(base.Price)
	supply := scarcitySupply
	if count > 0 {
		avg = float64(sum) / float64(count)
		supply = (1 - supplySlope*(float64(count)/supplyScale)) * uniform(0.8, 1.2)
	}

	increase := math.Max(1.0, math.Pow(avg/float64(base.Price), 1.5*uniform(1.0, 1.3)))
	fluctuation := uniform(0.90, 1.10)

	final := float64(base.Price) * (increaseWeight*increase + supplyWeight*supply) * fluctuation
	floor := float64(base.Price) * priceFloorRatio
	return int(math.Max(final, floor))
}

// AdjustPrice runs the heuristic against the context's own market and RNG.
func (c *Context) AdjustPrice(base catalog.Item) int {
	return AdjustDemandPrice(base, c.Listings, c.rng)
}

// RepriceDemands re-evaluates every live demand against the current
// market. Prices are memoized per item within the pass, so demands for
// the same item land on the same adjusted price.
func (c *Context) RepriceDemands() {
	priced := make(map[int]int)
	for _, d := range c.Demands {
		p, ok := priced[d.ItemID]
		if !ok {
			item, found := c.Catalog.ItemByID(d.ItemID)
			if !found {
				continue
			}
			p = c.AdjustPrice(item)
			priced[d.ItemID] = p
		}
		d.BuyPrice = p
	}
}
