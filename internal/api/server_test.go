package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/tradewinds/internal/catalog"
	"github.com/talgya/tradewinds/internal/econ"
	"github.com/talgya/tradewinds/internal/engine"
	"github.com/talgya/tradewinds/internal/games"
	"github.com/talgya/tradewinds/internal/sim"
)

func newTestServer(adminKey string) (*Server, *sim.Context) {
	clk := engine.NewManualClock(time.Unix(1_700_000_000, 0))
	sched := engine.NewManualScheduler(clk)
	ctx := sim.NewContext(catalog.Default(), 1, clk)
	lot := games.NewLottery(ctx)
	eng := engine.New(ctx, lot, sched)
	return &Server{
		Sim:       ctx,
		Eng:       eng,
		Lottery:   lot,
		Sentiment: econ.NewSentiment(1),
		AdminKey:  adminKey,
	}, ctx
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func post(t *testing.T, h http.Handler, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestStatusEndpoint(t *testing.T) {
	s, _ := newTestServer("")
	h := s.Handler()

	w := get(t, h, "/api/v1/status")
	require.Equal(t, http.StatusOK, w.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Contains(t, status, "wallet")
	assert.Contains(t, status, "sentiment")
	assert.Contains(t, status, "pass_counts")
}

func TestReadEndpoints(t *testing.T) {
	s, ctx := newTestServer("")
	ctx.SpawnListing()
	ctx.SpawnDemand()
	ctx.RefreshVendorQuotes()
	h := s.Handler()

	for _, path := range []string{
		"/api/v1/listings", "/api/v1/demands", "/api/v1/inventory",
		"/api/v1/wallet", "/api/v1/catalog", "/api/v1/vendor",
	} {
		w := get(t, h, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"), path)
	}
}

func TestHistoryDisabled(t *testing.T) {
	s, _ := newTestServer("")
	w := get(t, s.Handler(), "/api/v1/history")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuyEndpoint(t *testing.T) {
	s, ctx := newTestServer("")
	ctx.Wallet = econ.Wallet{Gold: 1}
	ctx.Listings = []*sim.MarketListing{
		{ListingID: 1, ItemID: 1, Name: "Wheat", Price: 5, Amount: 10, CategoryID: 101},
	}
	h := s.Handler()

	w := post(t, h, "/api/v1/buy", `{"listing_id":1,"amount":3}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, ctx.Listings[0].Amount)
	require.Len(t, ctx.Inventory, 1)

	// Rejections map to statuses.
	assert.Equal(t, http.StatusNotFound, post(t, h, "/api/v1/buy", `{"listing_id":9,"amount":1}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, post(t, h, "/api/v1/buy", `{"listing_id":1,"amount":0}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, post(t, h, "/api/v1/buy", `not json`, "").Code)

	ctx.Wallet = econ.Wallet{}
	assert.Equal(t, http.StatusConflict, post(t, h, "/api/v1/buy", `{"listing_id":1,"amount":1}`, "").Code)
}

func TestSellEndpoint(t *testing.T) {
	s, ctx := newTestServer("")
	ctx.Inventory = []*sim.InventoryItem{{ItemID: 1, Name: "Wheat", Amount: 5, CategoryID: 101}}
	ctx.Demands = []*sim.DemandRequest{
		{DemandID: 1, ItemID: 1, Name: "Wheat", BuyPrice: 8, MaxAmount: 4, NotAvailableTimer: 30},
	}
	h := s.Handler()

	w := post(t, h, "/api/v1/sell", `{"demand_id":1,"amount":4}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50+32, ctx.Wallet.TotalCopper())
	assert.Empty(t, ctx.Demands)
}

func TestGuessEndpoint(t *testing.T) {
	s, ctx := newTestServer("")
	h := s.Handler()

	w := post(t, h, "/api/v1/games/guess", `{"bid":10,"guess":3}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	// Wallet either lost the bid or won four times it.
	assert.True(t, ctx.Wallet.TotalCopper() == 40 || ctx.Wallet.TotalCopper() == 80)

	assert.Equal(t, http.StatusBadRequest, post(t, h, "/api/v1/games/guess", `{"bid":10,"guess":9}`, "").Code)
}

func TestAdminAuth(t *testing.T) {
	s, ctx := newTestServer("sekrit")
	ctx.SpawnListing()
	h := s.Handler()

	assert.Equal(t, http.StatusUnauthorized, post(t, h, "/api/v1/clear-market", ``, "").Code)
	assert.Equal(t, http.StatusUnauthorized, post(t, h, "/api/v1/clear-market", ``, "wrong").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, get(t, h, "/api/v1/clear-market").Code)

	w := post(t, h, "/api/v1/clear-market", ``, "sekrit")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, ctx.Listings)
}

func TestAdminDisabledWithoutKey(t *testing.T) {
	s, _ := newTestServer("")
	w := post(t, s.Handler(), "/api/v1/reset", ``, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResetEndpoint(t *testing.T) {
	s, ctx := newTestServer("k")
	ctx.Wallet.Receive(1000)
	ctx.SpawnListing()
	ctx.SpawnDemand()
	h := s.Handler()

	w := post(t, h, "/api/v1/reset", ``, "k")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, ctx.Listings)
	assert.Empty(t, ctx.Demands)
	assert.Equal(t, 50, ctx.Wallet.TotalCopper())
}

// Handlers run their simulation access on the scheduler's loop goroutine,
// so hitting the API while the engine churns must stay consistent. Run
// with the race detector to verify the exclusion.
func TestEndpointsSafeWhileEngineRuns(t *testing.T) {
	clk := engine.RealClock{}
	sched := engine.NewTimerScheduler(clk)
	ctx := sim.NewContext(catalog.Default(), 5, clk)
	ctx.Wallet = econ.Wallet{Gold: 1}
	lot := games.NewLottery(ctx)
	eng := engine.New(ctx, lot, sched)
	s := &Server{Sim: ctx, Eng: eng, Lottery: lot, Sentiment: econ.NewSentiment(5)}
	h := s.Handler()

	eng.Start()
	go sched.Run()
	defer sched.Stop()
	defer eng.Stop()

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, get(t, h, "/api/v1/listings").Code)
		assert.Equal(t, http.StatusOK, get(t, h, "/api/v1/status").Code)

		// Try to buy whatever the spawner has put up; anything but a
		// clean rejection or success means the exclusion broke.
		w := post(t, h, "/api/v1/buy", `{"listing_id":1,"amount":1}`, "")
		assert.Contains(t, []int{
			http.StatusOK, http.StatusNotFound, http.StatusConflict,
		}, w.Code)
	}
}

func TestGameRateLimit(t *testing.T) {
	s, ctx := newTestServer("")
	ctx.Wallet = econ.Wallet{Gold: 100}
	h := s.Handler()

	limited := false
	for i := 0; i < 70; i++ {
		w := post(t, h, "/api/v1/games/guess", `{"bid":1,"guess":2}`, "")
		if w.Code == http.StatusTooManyRequests {
			limited = true
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
			break
		}
	}
	assert.True(t, limited, "seventy rapid plays should trip the limiter")
}
