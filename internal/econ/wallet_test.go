package econ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWallet(t *testing.T) {
	w := NewWallet()
	assert.Equal(t, 0, w.Gold)
	assert.Equal(t, 0, w.Silver)
	assert.Equal(t, 50, w.Copper)
	assert.Equal(t, 50, w.TotalCopper())
}

func TestNormalizeBounds(t *testing.T) {
	w := Wallet{Copper: 12345}
	w.Normalize()
	assert.Equal(t, Wallet{Gold: 1, Silver: 23, Copper: 45}, w)

	w = Wallet{Silver: 250, Copper: 199}
	w.Normalize()
	assert.GreaterOrEqual(t, w.Silver, 0)
	assert.Less(t, w.Silver, 100)
	assert.GreaterOrEqual(t, w.Copper, 0)
	assert.Less(t, w.Copper, 100)
	assert.Equal(t, 250*100+199, w.TotalCopper())
}

func TestDeductAllOrNothing(t *testing.T) {
	w := Wallet{Gold: 1} // 10000 copper

	require.True(t, w.Deduct(9999))
	assert.Equal(t, 1, w.TotalCopper())
	assert.Less(t, w.Silver, 100)
	assert.Less(t, w.Copper, 100)

	before := w
	assert.False(t, w.Deduct(2))
	assert.Equal(t, before, w, "failed deduct must not mutate")

	assert.False(t, w.Deduct(-5))
	assert.Equal(t, before, w)
}

func TestDeductCrossesDenominations(t *testing.T) {
	// 1 silver, 0 copper: spending 1 copper must break the silver.
	w := Wallet{Silver: 1}
	require.True(t, w.Deduct(1))
	assert.Equal(t, Wallet{Copper: 99}, w)
}

func TestReceive(t *testing.T) {
	w := NewWallet()
	w.Receive(10050)
	assert.Equal(t, 1, w.Gold)
	assert.Equal(t, 1, w.Silver)
	assert.Equal(t, 0, w.Copper)

	before := w
	w.Receive(-10)
	assert.Equal(t, before, w)
}

func TestWalletString(t *testing.T) {
	w := Wallet{Gold: 2, Silver: 3, Copper: 4}
	assert.Equal(t, "2g 3s 4c", w.String())
}

func TestSentimentRange(t *testing.T) {
	s := NewSentiment(42)
	for i := 0; i < 1000; i++ {
		v := s.At(float64(i))
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	// Same seed, same curve.
	s2 := NewSentiment(42)
	assert.Equal(t, s.At(123), s2.At(123))
}
