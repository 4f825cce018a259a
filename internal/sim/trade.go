package sim

import "errors"

// User-facing trade rejections. Every failed operation leaves the ledger
// untouched.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Clearing the market taxes the wallet. The provider-change cost is quoted
// to the player but, as in the shipped game, never charged.
const (
	clearMarketTaxRate  = 0.12
	providerChangeRatio = 0.05
)

// PurchaseListing buys amount units from a market listing, all or nothing.
// The wallet is charged amount x price, the goods land in the inventory,
// and a sold-out listing is removed with its ID recycled.
func (c *Context) PurchaseListing(listingID, amount int) error {
	i, l := c.listingByID(listingID)
	if l == nil {
		return ErrNotFound
	}
	if amount <= 0 || amount > l.Amount {
		return ErrInvalidAmount
	}
	cost := amount * l.Price
	if !c.Wallet.Deduct(cost) {
		return ErrInsufficientFunds
	}
	c.addToInventory(l.ItemID, l.Name, l.CategoryID, amount)
	l.Amount -= amount
	if l.Amount <= 0 {
		c.removeListing(i)
	}
	return nil
}

// SellToDemand sells amount units from the inventory into a demand. The
// wallet is credited amount x buy price; emptied inventory stacks and
// filled demands are removed.
func (c *Context) SellToDemand(demandID, amount int) error {
	i, d := c.demandByID(demandID)
	if d == nil {
		return ErrNotFound
	}
	if amount <= 0 || amount > d.MaxAmount {
		return ErrInvalidAmount
	}
	j, held := c.inventoryByItem(d.ItemID)
	if held == nil || held.Amount < amount {
		return ErrInsufficientStock
	}

	c.Wallet.Receive(amount * d.BuyPrice)
	held.Amount -= amount
	if held.Amount <= 0 {
		c.Inventory = append(c.Inventory[:j], c.Inventory[j+1:]...)
	}
	d.MaxAmount -= amount
	if d.MaxAmount <= 0 {
		c.removeDemand(i)
	}
	return nil
}

// ClearMarket drops every listing and charges a 12% wealth tax for finding
// new providers. Listing IDs are recycled. Returns the tax paid.
func (c *Context) ClearMarket() int {
	tax := int(float64(c.Wallet.TotalCopper()) * clearMarketTaxRate)
	c.Wallet.Deduct(tax)
	for i := len(c.Listings) - 1; i >= 0; i-- {
		c.removeListing(i)
	}
	return tax
}

// ProviderChangeCost quotes the advertised cost of switching providers.
// The shipped game shows this number but never charges it.
func (c *Context) ProviderChangeCost() int {
	return int(float64(c.Wallet.TotalCopper()) * providerChangeRatio)
}

// ClearDemands drops every demand, recycling the IDs. Free of charge.
func (c *Context) ClearDemands() {
	for i := len(c.Demands) - 1; i >= 0; i-- {
		c.removeDemand(i)
	}
}
