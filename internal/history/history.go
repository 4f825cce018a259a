// Package history provides SQLite-backed trade history storage. Recording
// is best-effort: a broken database costs the history feature, never the
// game.
package history

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Trade kinds recorded in the ledger.
const (
	KindPurchase   = "purchase"    // bought from a market listing
	KindSale       = "sale"        // sold into a demand
	KindVendorBuy  = "vendor_buy"  // bought from the fixed-price vendor
	KindVendorSell = "vendor_sell" // sold to the fixed-price vendor
	KindGamePayout = "game_payout" // lottery, box, or guess winnings
)

// Trade is one recorded transaction.
type Trade struct {
	ID        int64  `db:"id" json:"id"`
	Kind      string `db:"kind" json:"kind"`
	ItemID    int    `db:"item_id" json:"item_id"`
	ItemName  string `db:"item_name" json:"item_name"`
	Amount    int    `db:"amount" json:"amount"`
	UnitPrice int    `db:"unit_price" json:"unit_price"`
	Total     int    `db:"total" json:"total"`
	At        int64  `db:"at" json:"at"` // unix seconds
}

// DB wraps a SQLite connection for trade history.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the history database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS trades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		item_id INTEGER NOT NULL,
		item_name TEXT NOT NULL,
		amount INTEGER NOT NULL,
		unit_price INTEGER NOT NULL,
		total INTEGER NOT NULL,
		at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_trades_at ON trades(at);
	CREATE INDEX IF NOT EXISTS idx_trades_kind ON trades(kind);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Record appends one trade.
func (db *DB) Record(kind string, itemID int, itemName string, amount, unitPrice int) error {
	_, err := db.conn.Exec(
		`INSERT INTO trades (kind, item_id, item_name, amount, unit_price, total, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		kind, itemID, itemName, amount, unitPrice, amount*unitPrice, time.Now().Unix(),
	)
	return err
}

// Recent returns the most recent N trades, newest first.
func (db *DB) Recent(limit int) ([]Trade, error) {
	var trades []Trade
	err := db.conn.Select(&trades,
		`SELECT id, kind, item_id, item_name, amount, unit_price, total, at
		 FROM trades ORDER BY id DESC LIMIT ?`,
		limit,
	)
	return trades, err
}

// SaveMeta stores a key-value pair alongside the history.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}
