// Package scoring implements the doom-score heuristic: versioned keyword
// rule tables applied against normalized profile text in a fixed precedence
// order, plus the deterministic hash fallback.
package scoring

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed rulesets/*.json
var rulesetFS embed.FS

// Rule maps a keyword to a score delta and a human-readable explanation.
// Rules are matched by case-insensitive substring containment, in array
// order, first match wins within a table.
type Rule struct {
	Keyword     string `json:"keyword"`
	Delta       int    `json:"delta"`
	Explanation string `json:"explanation"`
}

// FollowerTier applies a delta when the follower count exceeds Min.
// Tiers are ordered largest-first; the first matching tier wins.
type FollowerTier struct {
	Min         int    `json:"min"`
	Delta       int    `json:"delta"`
	Explanation string `json:"explanation"`
}

// SmallNetworkRule penalizes follower counts below Max. A zero Max disables
// the rule (historical rulesets had no small-network penalty).
type SmallNetworkRule struct {
	Max         int    `json:"max"`
	Delta       int    `json:"delta"`
	Explanation string `json:"explanation"`
}

// ExperienceRules holds the tenure adjustments.
type ExperienceRules struct {
	DeepThreshold    int    `json:"deep_threshold"`
	DeepDelta        int    `json:"deep_delta"`
	DeepExplanation  string `json:"deep_explanation"`
	EarlyThreshold   int    `json:"early_threshold"`
	EarlyDelta       int    `json:"early_delta"`
	EarlyExplanation string `json:"early_explanation"`
}

// DefaultFactors are the score-band-appropriate filler factors used to
// guarantee non-empty output.
type DefaultFactors struct {
	Safe   string `json:"safe"`   // score <= 40
	Mid    string `json:"mid"`    // 41..60
	Doomed string `json:"doomed"` // > 60
}

// ForScore picks the filler factor for a score band.
func (d DefaultFactors) ForScore(score int) string {
	switch {
	case score <= 40:
		return d.Safe
	case score <= 60:
		return d.Mid
	default:
		return d.Doomed
	}
}

// Ruleset is one versioned rule-table asset. Historical scoring revisions
// are separate assets selectable by configuration, not separate code paths.
type Ruleset struct {
	Version   string `json:"version"`
	BaseScore int    `json:"base_score"`
	MinScore  int    `json:"min_score"`
	MaxScore  int    `json:"max_score"`

	// Title tiers, scanned in this precedence order.
	VerySafe      []Rule `json:"very_safe"`
	DecliningExec []Rule `json:"declining_exec"`
	HighRisk      []Rule `json:"high_risk"`
	MediumRisk    []Rule `json:"medium_risk"`
	LowRisk       []Rule `json:"low_risk"`

	// Independent tables, at most one match each.
	IndustryRisk            []Rule `json:"industry_risk"`
	ProtectedIndustry       []Rule `json:"protected_industry"`
	ProtectedSpecialization []Rule `json:"protected_specialization"`
	TechSkill               []Rule `json:"tech_skill"`
	EntrepreneurSignal      []Rule `json:"entrepreneur_signal"`

	// Secondary numeric adjustments.
	Experience    ExperienceRules  `json:"experience"`
	FollowerTiers []FollowerTier   `json:"follower_tiers"`
	SmallNetwork  SmallNetworkRule `json:"small_network"`

	DefaultGood DefaultFactors `json:"default_good_factors"`
	DefaultBad  DefaultFactors `json:"default_bad_factors"`
}

// LoadRuleset loads and validates an embedded ruleset asset by version.
func LoadRuleset(version string) (*Ruleset, error) {
	data, err := rulesetFS.ReadFile("rulesets/" + version + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown ruleset version %q: %w", version, err)
	}

	var rs Ruleset
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse ruleset %q: %w", version, err)
	}

	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ruleset %q: %w", version, err)
	}

	return &rs, nil
}

// MustLoadRuleset loads an embedded ruleset or panics. Intended for the
// built-in assets, which are validated by tests.
func MustLoadRuleset(version string) *Ruleset {
	rs, err := LoadRuleset(version)
	if err != nil {
		panic(err)
	}
	return rs
}

// Validate checks the structural invariants the engine depends on.
func (rs *Ruleset) Validate() error {
	if rs.Version == "" {
		return fmt.Errorf("missing version")
	}
	if rs.MinScore >= rs.MaxScore {
		return fmt.Errorf("min_score %d must be below max_score %d", rs.MinScore, rs.MaxScore)
	}
	if rs.BaseScore < rs.MinScore || rs.BaseScore > rs.MaxScore {
		return fmt.Errorf("base_score %d outside clamp range [%d, %d]", rs.BaseScore, rs.MinScore, rs.MaxScore)
	}
	if len(rs.HighRisk) == 0 || len(rs.MediumRisk) == 0 {
		return fmt.Errorf("high_risk and medium_risk tables must be non-empty")
	}

	for _, tiers := range [][]FollowerTier{rs.FollowerTiers} {
		prev := 1<<31 - 1
		for _, t := range tiers {
			if t.Min >= prev {
				return fmt.Errorf("follower_tiers must be ordered largest-first")
			}
			prev = t.Min
		}
	}

	for name, table := range map[string][]Rule{
		"very_safe":                rs.VerySafe,
		"declining_exec":           rs.DecliningExec,
		"high_risk":                rs.HighRisk,
		"medium_risk":              rs.MediumRisk,
		"low_risk":                 rs.LowRisk,
		"industry_risk":            rs.IndustryRisk,
		"protected_industry":       rs.ProtectedIndustry,
		"protected_specialization": rs.ProtectedSpecialization,
		"tech_skill":               rs.TechSkill,
		"entrepreneur_signal":      rs.EntrepreneurSignal,
	} {
		for i, r := range table {
			if r.Keyword == "" {
				return fmt.Errorf("%s[%d]: empty keyword", name, i)
			}
			if r.Explanation == "" {
				return fmt.Errorf("%s[%d] (%q): empty explanation", name, i, r.Keyword)
			}
			if r.Delta == 0 {
				return fmt.Errorf("%s[%d] (%q): zero delta", name, i, r.Keyword)
			}
		}
	}

	return nil
}
