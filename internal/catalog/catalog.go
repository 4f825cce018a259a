// Package catalog holds the static item and category definitions the
// market simulation samples from. Loaded once at startup, immutable after.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
)

// Item is one entry in the static item catalog. Price, Amount, and
// NotAvailableTimer are the base values market listings jitter from;
// Weight is the sampling probability mass.
type Item struct {
	ItemID            int     `json:"item_id"`
	Name              string  `json:"name"`
	Price             int     `json:"price"`
	Amount            int     `json:"amount"`
	NotAvailableTimer float64 `json:"not_available_timer"`
	CategoryID        int     `json:"data_id"`
	Weight            float64 `json:"weight"`
}

// Category is the metadata record an item links to via CategoryID.
type Category struct {
	CategoryID   int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DefaultPrice int    `json:"default_price"`
	Type         string `json:"type"`
	StackNumber  int    `json:"stack_number"`
}

// Catalog bundles the item list with its category records and precomputes
// the total sampling weight.
type Catalog struct {
	Items       []Item
	Categories  []Category
	totalWeight float64
}

// New builds a catalog from the given items and categories. Entries
// without a positive price and amount cannot be traded and are dropped
// with a warning; downstream spawn and pricing math assumes both.
func New(items []Item, categories []Category) *Catalog {
	c := &Catalog{Categories: categories}
	for _, it := range items {
		if it.Price <= 0 || it.Amount <= 0 {
			slog.Warn("catalog item skipped",
				"item_id", it.ItemID, "name", it.Name,
				"price", it.Price, "amount", it.Amount)
			continue
		}
		c.Items = append(c.Items, it)
		if it.Weight > 0 {
			c.totalWeight += it.Weight
		}
	}
	return c
}

// Default returns the built-in catalog shipped with the game.
func Default() *Catalog {
	return New(defaultItems(), defaultCategories())
}

// LoadFile reads item definitions from a JSON file, pairing them with the
// given categories. A missing or malformed file is not fatal to callers;
// they fall back to Default.
func LoadFile(itemsPath, categoriesPath string) (*Catalog, error) {
	var items []Item
	if err := readJSON(itemsPath, &items); err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	var categories []Category
	if err := readJSON(categoriesPath, &categories); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return New(items, categories), nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Empty reports whether the catalog has no items to sample from.
func (c *Catalog) Empty() bool {
	return len(c.Items) == 0
}

// ItemByID looks up an item by its catalog ID.
func (c *Catalog) ItemByID(id int) (Item, bool) {
	for _, it := range c.Items {
		if it.ItemID == id {
			return it, true
		}
	}
	return Item{}, false
}

// CategoryByID looks up a category record.
func (c *Catalog) CategoryByID(id int) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.CategoryID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Sample picks one item with probability proportional to its weight.
// Returns false when the catalog is empty or carries no positive weight.
func (c *Catalog) Sample(rng *rand.Rand) (Item, bool) {
	if c.Empty() || c.totalWeight <= 0 {
		return Item{}, false
	}
	target := rng.Float64() * c.totalWeight
	for _, it := range c.Items {
		if it.Weight <= 0 {
			continue
		}
		target -= it.Weight
		if target < 0 {
			return it, true
		}
	}
	// Floating point slack: fall back to the last weighted item.
	for i := len(c.Items) - 1; i >= 0; i-- {
		if c.Items[i].Weight > 0 {
			return c.Items[i], true
		}
	}
	return Item{}, false
}
