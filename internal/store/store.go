// Package store persists the game ledger as flat JSON documents in a data
// directory. Loading is never fatal: missing files are created with
// defaults, and documents that fail to decode are replaced by defaults
// with a warning.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/talgya/tradewinds/internal/catalog"
	"github.com/talgya/tradewinds/internal/econ"
	"github.com/talgya/tradewinds/internal/sim"
)

// Ledger documents (read-write) and catalog documents (read-only).
const (
	inventoryFile  = "user_items.json"
	listingsFile   = "market_items.json"
	demandsFile    = "demands.json"
	walletFile     = "wallet.json"
	itemsFile      = "items.json"
	categoriesFile = "data.json"
)

// Store reads and writes the game's JSON documents under Dir.
type Store struct {
	Dir string
}

// New builds a store over a data directory, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// LoadCatalog reads items.json and data.json, falling back to the
// built-in catalog when either is missing or malformed.
func (s *Store) LoadCatalog() *catalog.Catalog {
	itemsPath := filepath.Join(s.Dir, itemsFile)
	catsPath := filepath.Join(s.Dir, categoriesFile)
	c, err := catalog.LoadFile(itemsPath, catsPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("catalog unreadable, using built-in", "err", err)
		}
		return catalog.Default()
	}
	if c.Empty() {
		slog.Warn("catalog files empty, using built-in")
		return catalog.Default()
	}
	return c
}

// LoadInto fills the context's ledger from disk. Each document falls back
// to its default independently, so one corrupt file never costs the rest.
func (s *Store) LoadInto(ctx *sim.Context) {
	loadDoc(filepath.Join(s.Dir, listingsFile), &ctx.Listings, nil)
	loadDoc(filepath.Join(s.Dir, demandsFile), &ctx.Demands, nil)
	loadDoc(filepath.Join(s.Dir, inventoryFile), &ctx.Inventory, nil)

	wallet := econ.NewWallet()
	loadDoc(filepath.Join(s.Dir, walletFile), &wallet, econ.NewWallet())
	wallet.Normalize()
	ctx.Wallet = wallet
}

// SaveAll writes every read-write document. Returns the first failure but
// attempts all four.
func (s *Store) SaveAll(ctx *sim.Context) error {
	var firstErr error
	save := func(name string, v any) {
		if err := writeDoc(filepath.Join(s.Dir, name), v); err != nil {
			slog.Error("save failed", "file", name, "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	save(listingsFile, ctx.SnapshotListings())
	save(demandsFile, ctx.SnapshotDemands())
	save(inventoryFile, ctx.SnapshotInventory())
	save(walletFile, ctx.Wallet)
	return firstErr
}

// loadDoc decodes path into v. A missing file is seeded with fallback; a
// corrupt file logs and leaves v at fallback.
func loadDoc[T any](path string, v *T, fallback T) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		*v = fallback
		if werr := writeDoc(path, fallback); werr != nil {
			slog.Warn("seed default failed", "file", filepath.Base(path), "err", werr)
		}
		return
	}
	if err != nil {
		slog.Warn("read failed, using default", "file", filepath.Base(path), "err", err)
		*v = fallback
		return
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("decode failed, using default", "file", filepath.Base(path), "err", err)
		*v = fallback
	}
}

// writeDoc writes v as indented JSON via a temp file rename.
func writeDoc(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
