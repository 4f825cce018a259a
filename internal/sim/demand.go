package sim

import "time"

// Demand tuning constants.
const (
	MaxDemands = 50

	maxDemandAmount = 20  // base cap on a single demand's amount roll
	amountDivisor   = 50  // large catalog stacks add a quadratic bonus
	demandTimerMin  = 30  // seconds
	demandTimerMax  = 120 // seconds
	timerDivisor    = 100 // big orders live slightly longer

	minPriceInfluence = 0.3
	minAmountScale    = 0.1

	DemandSpawnMinMillis = 500
	DemandSpawnMaxMillis = 1000
	DemandDecayPeriod    = 500 * time.Millisecond
	demandDecayStep      = 0.5
)

// SpawnDemand adds one demand for a sampled catalog item at a heuristic
// price. A full board or an empty catalog is a silent no-op.
func (c *Context) SpawnDemand() *DemandRequest {
	if len(c.Demands) >= MaxDemands {
		return nil
	}
	item, ok := c.Catalog.Sample(c.rng)
	if !ok {
		return nil
	}

	adjusted := c.AdjustPrice(item)
	ratio := float64(adjusted) / float64(item.Price)

	// Stack bonus scales quadratically with how big the catalog stack is.
	bonus := intPow2(float64(item.Amount) / amountDivisor)

	amount := c.randInt(1, minInt(maxDemandAmount, item.Amount)) + bonus

	// Expensive demands want less: rescale the cap by how far the
	// adjusted price sits above base, then reroll against it.
	scale := 1 - (ratio - 1)
	if scale < minAmountScale {
		scale = minAmountScale
	}
	limit := int(maxDemandAmount * scale)
	if limit < 1 {
		limit = 1
	}
	amount = c.randInt(1, minInt(limit, item.Amount)) + bonus

	influence := ratio
	if influence < minPriceInfluence {
		influence = minPriceInfluence
	}
	timer := (c.uniform(demandTimerMin, demandTimerMax) + float64(amount/timerDivisor)) * influence

	d := &DemandRequest{
		DemandID:          c.nextDemandID(),
		ItemID:            item.ItemID,
		Name:              item.Name,
		BuyPrice:          adjusted,
		MaxAmount:         amount,
		NotAvailableTimer: timer,
		CategoryID:        item.CategoryID,
	}
	c.Demands = append(c.Demands, d)
	return d
}

// NextDemandSpawnDelay draws the interval before the next spawn attempt.
// Note the demand loop is tuned in milliseconds, not seconds.
func (c *Context) NextDemandSpawnDelay() time.Duration {
	return time.Duration(c.randInt(DemandSpawnMinMillis, DemandSpawnMaxMillis)) * time.Millisecond
}

// DecayDemands runs one decay pass: half a second off every timer, expired
// demands removed with their IDs recycled. When adjustWithMarket is set
// the pass first reprices all demands against the current market.
func (c *Context) DecayDemands(adjustWithMarket bool) {
	if adjustWithMarket {
		c.RepriceDemands()
	}
	for i := len(c.Demands) - 1; i >= 0; i-- {
		d := c.Demands[i]
		if d.NotAvailableTimer > 0 {
			d.NotAvailableTimer -= demandDecayStep
		}
		if d.NotAvailableTimer <= 0 {
			c.removeDemand(i)
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// intPow2 truncates x² to an int.
func intPow2(x float64) int {
	return int(x * x)
}
