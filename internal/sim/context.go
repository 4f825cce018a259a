// Package sim implements the market simulation core: the shared ledger of
// listings, demands, and inventory, the spawn and decay passes that churn
// the market, the demand price heuristic, and the trade operations that
// move goods and currency between the market and the player.
package sim

import (
	"math/rand"
	"time"

	"github.com/talgya/tradewinds/internal/catalog"
	"github.com/talgya/tradewinds/internal/econ"
)

// Clock supplies current time to the simulation. Production uses the wall
// clock; tests inject a manual one.
type Clock interface {
	Now() time.Time
}

// MarketListing is one live sell offer on the market table.
type MarketListing struct {
	ListingID         int     `json:"id"`
	ItemID            int     `json:"item_id"`
	Name              string  `json:"name"`
	Price             int     `json:"price"`
	Amount            int     `json:"amount"`
	AvailableAt       float64 `json:"available_at"`
	NotAvailableTimer float64 `json:"not_available_timer"`
	CategoryID        int     `json:"data_id"`
}

// DemandRequest is one live buy order the player can sell into.
type DemandRequest struct {
	DemandID          int     `json:"id"`
	ItemID            int     `json:"item_id"`
	Name              string  `json:"name"`
	BuyPrice          int     `json:"buy_price"`
	MaxAmount         int     `json:"max_amount"`
	NotAvailableTimer float64 `json:"not_available_timer"`
	CategoryID        int     `json:"data_id"`
}

// InventoryItem is a stack of goods the player holds.
type InventoryItem struct {
	ItemID     int    `json:"item_id"`
	Name       string `json:"name"`
	Amount     int    `json:"amount"`
	CategoryID int    `json:"data_id"`
}

// Context owns the complete mutable simulation state. All mutation happens
// from the engine's loop goroutine; snapshots are taken between callbacks.
type Context struct {
	Catalog *catalog.Catalog

	Listings  []*MarketListing
	Demands   []*DemandRequest
	Inventory []*InventoryItem
	Wallet    econ.Wallet

	// Standing fixed-price vendor offers, rebuilt periodically.
	VendorQuotes []VendorQuote

	// Recycled IDs, reused oldest-first before new IDs are minted.
	FreeListingIDs []int
	FreeDemandIDs  []int

	rng   *rand.Rand
	clock Clock
}

// NewContext builds an empty simulation over the given catalog, with a
// seeded RNG so runs are reproducible.
func NewContext(cat *catalog.Catalog, seed int64, clock Clock) *Context {
	return &Context{
		Catalog: cat,
		Wallet:  econ.NewWallet(),
		rng:     rand.New(rand.NewSource(seed)),
		clock:   clock,
	}
}

// RNG exposes the seeded generator so sibling systems (the game parlor)
// share one reproducible stream.
func (c *Context) RNG() *rand.Rand {
	return c.rng
}

// AddItem merges amount units of a catalog item into the inventory.
// Unknown items are rejected.
func (c *Context) AddItem(itemID, amount int) bool {
	item, ok := c.Catalog.ItemByID(itemID)
	if !ok || amount <= 0 {
		return false
	}
	c.addToInventory(item.ItemID, item.Name, item.CategoryID, amount)
	return true
}

// Now is the clock reading as unix seconds, the unit AvailableAt uses.
func (c *Context) Now() float64 {
	return float64(c.clock.Now().UnixNano()) / float64(time.Second)
}

// nextListingID pops the oldest recycled listing ID, or mints max+1.
func (c *Context) nextListingID() int {
	if len(c.FreeListingIDs) > 0 {
		id := c.FreeListingIDs[0]
		c.FreeListingIDs = c.FreeListingIDs[1:]
		return id
	}
	max := 0
	for _, l := range c.Listings {
		if l.ListingID > max {
			max = l.ListingID
		}
	}
	return max + 1
}

// nextDemandID mirrors nextListingID for the demand side.
func (c *Context) nextDemandID() int {
	if len(c.FreeDemandIDs) > 0 {
		id := c.FreeDemandIDs[0]
		c.FreeDemandIDs = c.FreeDemandIDs[1:]
		return id
	}
	max := 0
	for _, d := range c.Demands {
		if d.DemandID > max {
			max = d.DemandID
		}
	}
	return max + 1
}

func (c *Context) listingByID(id int) (int, *MarketListing) {
	for i, l := range c.Listings {
		if l.ListingID == id {
			return i, l
		}
	}
	return -1, nil
}

func (c *Context) demandByID(id int) (int, *DemandRequest) {
	for i, d := range c.Demands {
		if d.DemandID == id {
			return i, d
		}
	}
	return -1, nil
}

func (c *Context) inventoryByItem(itemID int) (int, *InventoryItem) {
	for i, it := range c.Inventory {
		if it.ItemID == itemID {
			return i, it
		}
	}
	return -1, nil
}

// removeListing drops the listing at index i and recycles its ID.
func (c *Context) removeListing(i int) {
	c.FreeListingIDs = append(c.FreeListingIDs, c.Listings[i].ListingID)
	c.Listings = append(c.Listings[:i], c.Listings[i+1:]...)
}

// removeDemand drops the demand at index i and recycles its ID.
func (c *Context) removeDemand(i int) {
	c.FreeDemandIDs = append(c.FreeDemandIDs, c.Demands[i].DemandID)
	c.Demands = append(c.Demands[:i], c.Demands[i+1:]...)
}

// addToInventory merges an amount into the player's stack for the item,
// creating the stack if absent.
func (c *Context) addToInventory(itemID int, name string, categoryID, amount int) {
	if _, it := c.inventoryByItem(itemID); it != nil {
		it.Amount += amount
		return
	}
	c.Inventory = append(c.Inventory, &InventoryItem{
		ItemID:     itemID,
		Name:       name,
		Amount:     amount,
		CategoryID: categoryID,
	})
}

// SnapshotListings returns a copy of the live listings for readers outside
// the loop goroutine.
func (c *Context) SnapshotListings() []MarketListing {
	out := make([]MarketListing, len(c.Listings))
	for i, l := range c.Listings {
		out[i] = *l
	}
	return out
}

// SnapshotDemands copies the live demands.
func (c *Context) SnapshotDemands() []DemandRequest {
	out := make([]DemandRequest, len(c.Demands))
	for i, d := range c.Demands {
		out[i] = *d
	}
	return out
}

// SnapshotInventory copies the player's inventory.
func (c *Context) SnapshotInventory() []InventoryItem {
	out := make([]InventoryItem, len(c.Inventory))
	for i, it := range c.Inventory {
		out[i] = *it
	}
	return out
}

// SnapshotVendorQuotes copies the vendor's current price board.
func (c *Context) SnapshotVendorQuotes() []VendorQuote {
	out := make([]VendorQuote, len(c.VendorQuotes))
	copy(out, c.VendorQuotes)
	return out
}

// Reset restarts the game: collections emptied, free-lists cleared, wallet
// back to the starting balance.
func (c *Context) Reset() {
	c.Listings = nil
	c.Demands = nil
	c.Inventory = nil
	c.FreeListingIDs = nil
	c.FreeDemandIDs = nil
	c.VendorQuotes = nil
	c.Wallet = econ.NewWallet()
}
