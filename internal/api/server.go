// Package api serves the market state over HTTP.
// GET endpoints are public (read-only observation).
// Trade and game endpoints are POST; maintenance endpoints additionally
// require a bearer token.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/talgya/tradewinds/internal/econ"
	"github.com/talgya/tradewinds/internal/engine"
	"github.com/talgya/tradewinds/internal/games"
	"github.com/talgya/tradewinds/internal/history"
	"github.com/talgya/tradewinds/internal/sim"
)

// Server serves the simulation state over HTTP. Handlers never touch the
// simulation directly: every read or mutation runs through Eng.RunOn so it
// executes on the scheduler's loop goroutine, serialized against the
// periodic passes.
type Server struct {
	Sim       *sim.Context
	Eng       *engine.Engine
	Lottery   *games.Lottery
	DB        *history.DB // nil disables the history endpoint and recording
	Sentiment *econ.Sentiment
	Port      int
	AdminKey  string // Bearer token for maintenance endpoints. Empty = disabled.
}

// Handler builds the route table. Split out from Start for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Public endpoints (GET, read-only).
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/listings", s.handleListings)
	mux.HandleFunc("/api/v1/demands", s.handleDemands)
	mux.HandleFunc("/api/v1/inventory", s.handleInventory)
	mux.HandleFunc("/api/v1/wallet", s.handleWallet)
	mux.HandleFunc("/api/v1/catalog", s.handleCatalog)
	mux.HandleFunc("/api/v1/vendor", s.handleVendor)
	mux.HandleFunc("/api/v1/history", s.handleHistory)

	// Player actions (POST).
	mux.HandleFunc("/api/v1/buy", postOnly(s.handleBuy))
	mux.HandleFunc("/api/v1/sell", postOnly(s.handleSell))
	mux.HandleFunc("/api/v1/vendor/buy", postOnly(s.handleVendorBuy))
	mux.HandleFunc("/api/v1/vendor/sell", postOnly(s.handleVendorSell))
	// Gambling endpoints are rate limited per IP.
	gameLimiter := NewRateLimiter(60, time.Minute)
	mux.HandleFunc("/api/v1/games/lottery", RateLimitMiddleware(gameLimiter, postOnly(s.handleLotteryTicket)))
	mux.HandleFunc("/api/v1/games/box", RateLimitMiddleware(gameLimiter, postOnly(s.handleMysteryBox)))
	mux.HandleFunc("/api/v1/games/guess", RateLimitMiddleware(gameLimiter, postOnly(s.handleGuess)))

	// Maintenance endpoints (POST, require bearer token).
	mux.HandleFunc("/api/v1/reprice", s.adminOnly(s.handleReprice))
	mux.HandleFunc("/api/v1/clear-market", s.adminOnly(s.handleClearMarket))
	mux.HandleFunc("/api/v1/clear-demands", s.adminOnly(s.handleClearDemands))
	mux.HandleFunc("/api/v1/reset", s.adminOnly(s.handleReset))

	return corsMiddleware(mux)
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	handler := s.Handler()
	go func() {
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins. Set
// CORS_ORIGINS to a comma-separated list; localhost dev servers are
// always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func postOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if s.AdminKey == "" {
			http.Error(w, "maintenance endpoints disabled (no TRADEWINDS_ADMIN_KEY set)", http.StatusForbidden)
			return
		}
		if !s.checkBearerToken(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var status map[string]any
	s.Eng.RunOn(func() {
		elapsed := s.Eng.Elapsed()
		status = map[string]any{
			"listings":  len(s.Sim.Listings),
			"demands":   len(s.Sim.Demands),
			"inventory": len(s.Sim.Inventory),
			"wallet":    s.Sim.Wallet,
			"elapsed":   elapsed,
			"pass_counts": map[string]uint64{
				"market_spawns": s.Eng.MarketSpawns,
				"market_ticks":  s.Eng.MarketTicks,
				"demand_spawns": s.Eng.DemandSpawns,
				"demand_ticks":  s.Eng.DemandTicks,
				"lottery_draws": s.Eng.LotteryDraws,
			},
		}
		if s.Sentiment != nil {
			status["sentiment"] = s.Sentiment.At(elapsed)
		}
		if s.Lottery != nil {
			status["lottery_ticket"] = s.Lottery.TicketHeld()
		}
	})
	writeJSON(w, status)
}

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	var out []sim.MarketListing
	s.Eng.RunOn(func() { out = s.Sim.SnapshotListings() })
	writeJSON(w, out)
}

func (s *Server) handleDemands(w http.ResponseWriter, r *http.Request) {
	var out []sim.DemandRequest
	s.Eng.RunOn(func() { out = s.Sim.SnapshotDemands() })
	writeJSON(w, out)
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	var out []sim.InventoryItem
	s.Eng.RunOn(func() { out = s.Sim.SnapshotInventory() })
	writeJSON(w, out)
}

func (s *Server) handleWallet(w http.ResponseWriter, r *http.Request) {
	var wallet econ.Wallet
	s.Eng.RunOn(func() { wallet = s.Sim.Wallet })
	writeJSON(w, map[string]any{
		"wallet":       wallet,
		"total_copper": wallet.TotalCopper(),
	})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"items":      s.Sim.Catalog.Items,
		"categories": s.Sim.Catalog.Categories,
	})
}

func (s *Server) handleVendor(w http.ResponseWriter, r *http.Request) {
	var out []sim.VendorQuote
	s.Eng.RunOn(func() { out = s.Sim.SnapshotVendorQuotes() })
	writeJSON(w, out)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "history disabled", http.StatusNotFound)
		return
	}
	trades, err := s.DB.Recent(100)
	if err != nil {
		http.Error(w, "history query failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, trades)
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ListingID int `json:"listing_id"`
		Amount    int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	var (
		listing sim.MarketListing
		found   bool
		wallet  econ.Wallet
		opErr   error
	)
	s.Eng.RunOn(func() {
		if l := s.lookupListing(req.ListingID); l != nil {
			listing, found = *l, true
		}
		opErr = s.Sim.PurchaseListing(req.ListingID, req.Amount)
		wallet = s.Sim.Wallet
	})
	if opErr != nil {
		writeTradeError(w, opErr)
		return
	}
	if found {
		s.record(history.KindPurchase, listing.ItemID, listing.Name, req.Amount, listing.Price)
	}
	writeJSON(w, map[string]any{"ok": true, "wallet": wallet})
}

func (s *Server) handleSell(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DemandID int `json:"demand_id"`
		Amount   int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	var (
		demand sim.DemandRequest
		found  bool
		wallet econ.Wallet
		opErr  error
	)
	s.Eng.RunOn(func() {
		if d := s.lookupDemand(req.DemandID); d != nil {
			demand, found = *d, true
		}
		opErr = s.Sim.SellToDemand(req.DemandID, req.Amount)
		wallet = s.Sim.Wallet
	})
	if opErr != nil {
		writeTradeError(w, opErr)
		return
	}
	if found {
		s.record(history.KindSale, demand.ItemID, demand.Name, req.Amount, demand.BuyPrice)
	}
	writeJSON(w, map[string]any{"ok": true, "wallet": wallet})
}

func (s *Server) handleVendorBuy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID int `json:"item_id"`
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	var (
		quote  sim.VendorQuote
		found  bool
		wallet econ.Wallet
		opErr  error
	)
	s.Eng.RunOn(func() {
		if q := s.lookupQuote(req.ItemID); q != nil {
			quote, found = *q, true
		}
		opErr = s.Sim.VendorBuy(req.ItemID, req.Amount)
		wallet = s.Sim.Wallet
	})
	if opErr != nil {
		writeTradeError(w, opErr)
		return
	}
	if found {
		s.record(history.KindVendorBuy, quote.ItemID, quote.Name, req.Amount, quote.SellPrice)
	}
	writeJSON(w, map[string]any{"ok": true, "wallet": wallet})
}

func (s *Server) handleVendorSell(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID int `json:"item_id"`
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	var (
		quote  sim.VendorQuote
		found  bool
		wallet econ.Wallet
		opErr  error
	)
	s.Eng.RunOn(func() {
		if q := s.lookupQuote(req.ItemID); q != nil {
			quote, found = *q, true
		}
		opErr = s.Sim.VendorSell(req.ItemID, req.Amount)
		wallet = s.Sim.Wallet
	})
	if opErr != nil {
		writeTradeError(w, opErr)
		return
	}
	if found {
		s.record(history.KindVendorSell, quote.ItemID, quote.Name, req.Amount, quote.BuyPrice)
	}
	writeJSON(w, map[string]any{"ok": true, "wallet": wallet})
}

func (s *Server) handleLotteryTicket(w http.ResponseWriter, r *http.Request) {
	if s.Lottery == nil {
		http.Error(w, "lottery disabled", http.StatusNotFound)
		return
	}
	var (
		wallet econ.Wallet
		opErr  error
	)
	s.Eng.RunOn(func() {
		opErr = s.Lottery.BuyTicket()
		wallet = s.Sim.Wallet
	})
	if opErr != nil {
		writeTradeError(w, opErr)
		return
	}
	writeJSON(w, map[string]any{"ok": true, "wallet": wallet})
}

func (s *Server) handleMysteryBox(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tier string `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	var (
		reward games.BoxReward
		wallet econ.Wallet
		opErr  error
	)
	s.Eng.RunOn(func() {
		reward, opErr = games.OpenBox(s.Sim, games.BoxTier(req.Tier))
		wallet = s.Sim.Wallet
	})
	if opErr != nil {
		writeTradeError(w, opErr)
		return
	}
	s.record(history.KindGamePayout, reward.ItemID, reward.Name, reward.Count, 0)
	writeJSON(w, map[string]any{"reward": reward, "wallet": wallet})
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Bid   int `json:"bid"`
		Guess int `json:"guess"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	var (
		res    games.GuessResult
		wallet econ.Wallet
		opErr  error
	)
	s.Eng.RunOn(func() {
		res, opErr = games.PlayGuess(s.Sim, req.Bid, req.Guess)
		wallet = s.Sim.Wallet
	})
	if opErr != nil {
		writeTradeError(w, opErr)
		return
	}
	if res.Won {
		s.record(history.KindGamePayout, 0, "number_guess", 1, res.Payout)
	}
	writeJSON(w, map[string]any{"result": res, "wallet": wallet})
}

func (s *Server) handleReprice(w http.ResponseWriter, r *http.Request) {
	var demands int
	s.Eng.RunOn(func() {
		s.Sim.RepriceDemands()
		demands = len(s.Sim.Demands)
	})
	slog.Info("demands repriced", "demands", demands)
	writeJSON(w, map[string]any{"ok": true, "demands": demands})
}

func (s *Server) handleClearMarket(w http.ResponseWriter, r *http.Request) {
	var (
		tax    int
		wallet econ.Wallet
	)
	s.Eng.RunOn(func() {
		tax = s.Sim.ClearMarket()
		wallet = s.Sim.Wallet
	})
	slog.Info("market cleared", "tax", tax, "wallet", wallet.String())
	writeJSON(w, map[string]any{"ok": true, "tax": tax, "wallet": wallet})
}

func (s *Server) handleClearDemands(w http.ResponseWriter, r *http.Request) {
	s.Eng.RunOn(func() { s.Sim.ClearDemands() })
	slog.Info("demands cleared")
	writeJSON(w, map[string]any{"ok": true})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var wallet econ.Wallet
	s.Eng.RunOn(func() {
		s.Sim.Reset()
		wallet = s.Sim.Wallet
	})
	slog.Info("game reset", "wallet", wallet.String())
	writeJSON(w, map[string]any{"ok": true, "wallet": wallet})
}

// record appends to trade history, best-effort.
func (s *Server) record(kind string, itemID int, name string, amount, unitPrice int) {
	if s.DB == nil {
		return
	}
	if err := s.DB.Record(kind, itemID, name, amount, unitPrice); err != nil {
		slog.Warn("history record failed", "kind", kind, "err", err)
	}
}

func (s *Server) lookupListing(id int) *sim.MarketListing {
	for _, l := range s.Sim.Listings {
		if l.ListingID == id {
			return l
		}
	}
	return nil
}

func (s *Server) lookupDemand(id int) *sim.DemandRequest {
	for _, d := range s.Sim.Demands {
		if d.DemandID == id {
			return d
		}
	}
	return nil
}

func (s *Server) lookupQuote(itemID int) *sim.VendorQuote {
	quotes := s.Sim.VendorQuotes
	for i := range quotes {
		if quotes[i].ItemID == itemID {
			return &quotes[i]
		}
	}
	return nil
}

// writeTradeError maps simulation rejections to HTTP statuses.
func writeTradeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sim.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, sim.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, sim.ErrInsufficientFunds),
		errors.Is(err, sim.ErrInsufficientStock),
		errors.Is(err, games.ErrAlreadyEntered):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
