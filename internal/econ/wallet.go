// Package econ holds the player's currency model and the market sentiment
// indicator. Prices everywhere in the simulation are integer copper; the
// wallet splits that into gold, silver, and copper for display and storage.
package econ

import "fmt"

// Currency conversion: 1 gold = 100 silver, 1 silver = 100 copper.
const (
	CopperPerSilver = 100
	SilverPerGold   = 100
	CopperPerGold   = CopperPerSilver * SilverPerGold
)

// StartingCopper is the balance a fresh or reset wallet holds.
const StartingCopper = 50

// Wallet is the player's three-denomination balance. All fields stay
// non-negative; after Normalize, Silver and Copper are below 100.
type Wallet struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Copper int `json:"copper"`
}

// NewWallet returns the default starting wallet.
func NewWallet() Wallet {
	w := Wallet{Copper: StartingCopper}
	w.Normalize()
	return w
}

// TotalCopper is the whole balance expressed in copper.
func (w Wallet) TotalCopper() int {
	return w.Gold*CopperPerGold + w.Silver*CopperPerSilver + w.Copper
}

// Normalize carries excess copper into silver and excess silver into gold
// so that 0 <= Silver,Copper < 100.
func (w *Wallet) Normalize() {
	w.Silver += w.Copper / CopperPerSilver
	w.Copper %= CopperPerSilver
	w.Gold += w.Silver / SilverPerGold
	w.Silver %= SilverPerGold
}

// CanAfford reports whether the wallet covers a cost in copper.
func (w Wallet) CanAfford(copper int) bool {
	return copper >= 0 && w.TotalCopper() >= copper
}

// Deduct removes a copper cost from the wallet, all or nothing. Returns
// false without mutating when the balance is short or the cost negative.
func (w *Wallet) Deduct(copper int) bool {
	if !w.CanAfford(copper) {
		return false
	}
	rest := w.TotalCopper() - copper
	w.Gold = rest / CopperPerGold
	w.Silver = (rest % CopperPerGold) / CopperPerSilver
	w.Copper = rest % CopperPerSilver
	return true
}

// Receive credits a copper amount and renormalizes. Negative amounts are
// ignored.
func (w *Wallet) Receive(copper int) {
	if copper <= 0 {
		return
	}
	w.Copper += copper
	w.Normalize()
}

// String renders the balance for logs, e.g. "1g 20s 5c".
func (w Wallet) String() string {
	return fmt.Sprintf("%dg %ds %dc", w.Gold, w.Silver, w.Copper)
}
