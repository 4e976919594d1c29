package types

// ScoreResult is a scored analysis before it is dressed up for a client:
// the score plus the factor lists that explain it.
type ScoreResult struct {
	Score       int      `json:"score"`
	Roast       string   `json:"roast,omitempty"`
	GoodFactors []string `json:"goodFactors"`
	BadFactors  []string `json:"badFactors"`
}

// Tier is the display band a score falls into.
type Tier string

const (
	TierUntouchable  Tier = "UNTOUCHABLE"
	TierProbablyFine Tier = "PROBABLY FINE"
	TierSweating     Tier = "SWEATING"
	TierOnTheList    Tier = "ON THE LIST"
	TierCooked       Tier = "COOKED"
)

// TierForScore maps a score to its display tier.
func TierForScore(score int) Tier {
	switch {
	case score <= 20:
		return TierUntouchable
	case score <= 40:
		return TierProbablyFine
	case score <= 60:
		return TierSweating
	case score <= 80:
		return TierOnTheList
	default:
		return TierCooked
	}
}
