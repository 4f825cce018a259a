package sim

import "time"

// Vendor quote tuning.
const (
	VendorRefreshPeriod = 10 * time.Second

	vendorHighestDiscount = 0.9
	vendorMarkupMax       = 1.15
)

// VendorQuote is the fixed-price vendor's standing offer for one catalog
// item: BuyPrice is what the vendor pays the player per unit, SellPrice is
// what the vendor charges.
type VendorQuote struct {
	ItemID    int    `json:"item_id"`
	Name      string `json:"name"`
	BuyPrice  int    `json:"buy_price"`
	SellPrice int    `json:"sell_price"`
}

// RefreshVendorQuotes rebuilds the vendor's price board from the current
// market. The vendor buys at the cheapest matching market price (base when
// the market carries none) and sells at a markup over the dearest, never
// at or below its own buy price.
func (c *Context) RefreshVendorQuotes() {
	quotes := make([]VendorQuote, 0, len(c.Catalog.Items))
	for _, item := range c.Catalog.Items {
		lowest, highest := 0, 0
		for _, l := range c.Listings {
			if l.CategoryID != item.CategoryID {
				continue
			}
			if lowest == 0 || l.Price < lowest {
				lowest = l.Price
			}
			if l.Price > highest {
				highest = l.Price
			}
		}

		buy := item.Price
		if lowest > 0 {
			buy = lowest
		}

		sell := float64(item.Price)
		if h := vendorHighestDiscount * float64(highest); h > sell {
			sell = h
		}
		sellPrice := int(sell * c.uniform(1.0, vendorMarkupMax))
		if sellPrice <= buy {
			sellPrice = buy + 1
		}

		quotes = append(quotes, VendorQuote{
			ItemID:    item.ItemID,
			Name:      item.Name,
			BuyPrice:  buy,
			SellPrice: sellPrice,
		})
	}
	c.VendorQuotes = quotes
}

func (c *Context) vendorQuote(itemID int) *VendorQuote {
	for i := range c.VendorQuotes {
		if c.VendorQuotes[i].ItemID == itemID {
			return &c.VendorQuotes[i]
		}
	}
	return nil
}

// VendorBuy purchases amount units of a catalog item from the vendor at
// the quoted sell price. The vendor's stock is unlimited.
func (c *Context) VendorBuy(itemID, amount int) error {
	q := c.vendorQuote(itemID)
	if q == nil {
		return ErrNotFound
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !c.Wallet.Deduct(amount * q.SellPrice) {
		return ErrInsufficientFunds
	}
	item, _ := c.Catalog.ItemByID(itemID)
	c.addToInventory(itemID, q.Name, item.CategoryID, amount)
	return nil
}

// VendorSell sells amount units from the inventory to the vendor at the
// quoted buy price.
func (c *Context) VendorSell(itemID, amount int) error {
	q := c.vendorQuote(itemID)
	if q == nil {
		return ErrNotFound
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	j, held := c.inventoryByItem(itemID)
	if held == nil || held.Amount < amount {
		return ErrInsufficientStock
	}
	c.Wallet.Receive(amount * q.BuyPrice)
	held.Amount -= amount
	if held.Amount <= 0 {
		c.Inventory = append(c.Inventory[:j], c.Inventory[j+1:]...)
	}
	return nil
}
