package econ

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sentiment produces a smooth market-mood value in [-1, 1] from elapsed
// simulation time. It is informational only and never feeds into prices.
type Sentiment struct {
	noise opensimplex.Noise
}

// NewSentiment seeds the underlying noise field.
func NewSentiment(seed int64) *Sentiment {
	return &Sentiment{noise: opensimplex.NewNormalized(seed)}
}

// At samples the mood at t seconds of elapsed time. The frequency is tuned
// so the mood drifts noticeably over a few minutes of play.
func (s *Sentiment) At(t float64) float64 {
	// Normalized noise is in [0,1]; remap to [-1,1].
	return s.noise.Eval2(t*0.01, 0)*2 - 1
}
