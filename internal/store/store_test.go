package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/tradewinds/internal/catalog"
	"github.com/talgya/tradewinds/internal/econ"
	"github.com/talgya/tradewinds/internal/sim"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Unix(1_700_000_000, 0) }

func newCtx() *sim.Context {
	return sim.NewContext(catalog.Default(), 1, fixedClock{})
}

func TestLoadCreatesDefaults(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "data"))
	require.NoError(t, err)

	ctx := newCtx()
	s.LoadInto(ctx)

	assert.Empty(t, ctx.Listings)
	assert.Empty(t, ctx.Demands)
	assert.Empty(t, ctx.Inventory)
	assert.Equal(t, 50, ctx.Wallet.TotalCopper())

	// Missing documents were seeded on disk.
	for _, name := range []string{"market_items.json", "demands.json", "user_items.json", "wallet.json"} {
		_, err := os.Stat(filepath.Join(s.Dir, name))
		assert.NoError(t, err, name)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	ctx := newCtx()
	ctx.Wallet = econ.Wallet{Gold: 2, Silver: 30, Copper: 7}
	ctx.Listings = []*sim.MarketListing{
		{ListingID: 1, ItemID: 3, Name: "Wood", Price: 14, Amount: 80, AvailableAt: 1.7e9, NotAvailableTimer: 42, CategoryID: 103},
		{ListingID: 2, ItemID: 11, Name: "Apple", Price: 9, Amount: 150, AvailableAt: 1.7e9, NotAvailableTimer: 17, CategoryID: 111},
	}
	ctx.Demands = []*sim.DemandRequest{
		{DemandID: 5, ItemID: 11, Name: "Apple", BuyPrice: 12, MaxAmount: 6, NotAvailableTimer: 33.5, CategoryID: 111},
	}
	ctx.Inventory = []*sim.InventoryItem{
		{ItemID: 3, Name: "Wood", Amount: 12, CategoryID: 103},
	}

	require.NoError(t, s.SaveAll(ctx))

	restored := newCtx()
	s.LoadInto(restored)

	assert.Equal(t, ctx.Wallet, restored.Wallet)
	require.Len(t, restored.Listings, 2)
	assert.Equal(t, *ctx.Listings[0], *restored.Listings[0])
	assert.Equal(t, *ctx.Listings[1], *restored.Listings[1])
	require.Len(t, restored.Demands, 1)
	assert.Equal(t, *ctx.Demands[0], *restored.Demands[0])
	require.Len(t, restored.Inventory, 1)
	assert.Equal(t, *ctx.Inventory[0], *restored.Inventory[0])
}

func TestCorruptDocumentFallsBack(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "wallet.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "market_items.json"), []byte("[1,2"), 0o644))

	ctx := newCtx()
	s.LoadInto(ctx)

	assert.Equal(t, 50, ctx.Wallet.TotalCopper(), "corrupt wallet resets to starting balance")
	assert.Empty(t, ctx.Listings)
}

func TestLoadCatalogFallsBackToBuiltIn(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	c := s.LoadCatalog()
	require.NotNil(t, c)
	assert.Len(t, c.Items, 36)

	// A catalog on disk wins over the built-in.
	items := `[{"item_id":1,"name":"Wheat","price":5,"amount":100,"not_available_timer":60,"data_id":101,"weight":10}]`
	cats := `[{"id":101,"name":"Wheat","description":"d","default_price":3,"type":"Essentials","stack_number":100}]`
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "items.json"), []byte(items), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "data.json"), []byte(cats), 0o644))

	c = s.LoadCatalog()
	assert.Len(t, c.Items, 1)
}

func TestLoadedWalletIsNormalized(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "wallet.json"),
		[]byte(`{"gold":0,"silver":0,"copper":12345}`), 0o644))

	ctx := newCtx()
	s.LoadInto(ctx)

	assert.Equal(t, econ.Wallet{Gold: 1, Silver: 23, Copper: 45}, ctx.Wallet)
}
