package scoring

import "hash/fnv"

// Fallback score range used when no profile data can be obtained at all.
const (
	fallbackFloor = 40
	fallbackSpan  = 45 // scores land in [40, 84]
)

// FallbackFactors accompany a hash-derived score.
var FallbackFactors = struct {
	Good []string
	Bad  []string
}{
	Good: []string{"Score based on general trends"},
	Bad:  []string{"Could not fetch profile"},
}

// HashScore derives a deterministic pseudo-score from an input string.
// The exact bit pattern carries no meaning beyond being stable for a given
// input; any profile would rather have a real analysis.
func HashScore(s string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return fallbackFloor + int(h.Sum32()%fallbackSpan)
}
