package sim

import "time"

// Market tuning constants.
const (
	MaxListings = 100

	// Jitter applied to catalog base values when a listing spawns.
	priceFactorMin  = 0.85
	priceFactorMax  = 1.85
	amountFactorMin = 0.15
	amountFactorMax = 2.5
	timerFactorMin  = 0.5
	timerFactorMax  = 1.5

	// New listings become purchasable up to a second after spawning.
	availableDelayMax = 1.0

	// Spawn loop reschedule bounds, decay period.
	MarketSpawnMin    = 500 * time.Millisecond
	MarketSpawnMax    = 2500 * time.Millisecond
	MarketDecayPeriod = time.Second
)

// uniform draws from [lo, hi).
func (c *Context) uniform(lo, hi float64) float64 {
	return lo + c.rng.Float64()*(hi-lo)
}

// randInt draws an integer from [lo, hi] inclusive.
func (c *Context) randInt(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}

// SpawnListing adds one jittered listing sampled from the catalog. A full
// market or an empty catalog is a silent no-op.
func (c *Context) SpawnListing() *MarketListing {
	if len(c.Listings) >= MaxListings {
		return nil
	}
	item, ok := c.Catalog.Sample(c.rng)
	if !ok {
		return nil
	}

	l := &MarketListing{
		ListingID:         c.nextListingID(),
		ItemID:            item.ItemID,
		Name:              item.Name,
		Price:             int(float64(item.Price) * c.uniform(priceFactorMin, priceFactorMax)),
		Amount:            int(float64(item.Amount) * c.uniform(amountFactorMin, amountFactorMax)),
		AvailableAt:       c.Now() + c.uniform(0, availableDelayMax),
		NotAvailableTimer: float64(int(item.NotAvailableTimer * c.uniform(timerFactorMin, timerFactorMax))),
		CategoryID:        item.CategoryID,
	}
	c.Listings = append(c.Listings, l)
	return l
}

// NextMarketSpawnDelay draws the interval before the next spawn attempt.
func (c *Context) NextMarketSpawnDelay() time.Duration {
	return time.Duration(c.uniform(float64(MarketSpawnMin), float64(MarketSpawnMax)))
}

// DecayMarket runs one decay pass: every purchasable listing loses one
// second of timer, and listings whose timer or stock has run out are
// removed with their IDs recycled. Listings not yet available are skipped.
func (c *Context) DecayMarket() {
	now := c.Now()
	for i := len(c.Listings) - 1; i >= 0; i-- {
		l := c.Listings[i]
		if now < l.AvailableAt {
			continue
		}
		l.NotAvailableTimer -= 1
		if l.NotAvailableTimer <= 0 || l.Amount <= 0 {
			c.removeListing(i)
		}
	}
}
