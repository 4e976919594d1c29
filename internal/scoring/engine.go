package scoring

import (
	"strings"

	"github.com/jonathan/doomscore/internal/types"
)

// Engine applies a ruleset against normalized profile text. It is pure:
// identical input always produces identical output, and nothing is mutated
// or stored between calls.
type Engine struct {
	rules *Ruleset
}

// NewEngine creates an engine bound to a loaded ruleset.
func NewEngine(rules *Ruleset) *Engine {
	return &Engine{rules: rules}
}

// Ruleset returns the ruleset the engine was built with.
func (e *Engine) Ruleset() *Ruleset {
	return e.rules
}

// Score computes the doom score for an enriched profile. Absent fields are
// treated as empty/zero, never as an error; this function cannot fail.
func (e *Engine) Score(p *types.Profile) types.ScoreResult {
	return e.score(p, false)
}

// ScoreJobTitle computes the doom score for a bare job title. Only the
// title, industry and skill tables apply; network and tenure adjustments
// need profile data a title does not carry.
func (e *Engine) ScoreJobTitle(title string) types.ScoreResult {
	return e.score(types.FromJobTitle(title), true)
}

func (e *Engine) score(p *types.Profile, titleOnly bool) types.ScoreResult {
	rs := e.rules
	text := SearchText(p)
	score := rs.BaseScore

	var good, bad []string

	// Tier short-circuit: an ownership signal wins outright and suppresses
	// the industry, small-network, early-career and entrepreneur adjustments
	// below. Owners are not hurt by being "in" a risky industry.
	verySafe := false
	lowRisk := false

	if rule, ok := firstMatch(rs.VerySafe, text); ok {
		score += rule.Delta
		good = append(good, rule.Explanation)
		verySafe = true
	} else if rule, ok := firstMatch(rs.DecliningExec, text); ok {
		// Declining executive functions are tested before the generic
		// "chief/director" protection that would otherwise shield them.
		score += rule.Delta
		bad = append(bad, rule.Explanation)
	} else if rule, ok := firstMatch(rs.HighRisk, text); ok {
		score += rule.Delta
		bad = append(bad, rule.Explanation)
	} else if rule, ok := firstMatch(rs.MediumRisk, text); ok {
		score += rule.Delta
		bad = append(bad, rule.Explanation)
	} else if rule, ok := firstMatch(rs.LowRisk, text); ok {
		score += rule.Delta
		good = append(good, rule.Explanation)
		lowRisk = true
	}

	// Industry signals, independent of the title match.
	if !verySafe {
		if rule, ok := firstMatch(rs.IndustryRisk, text); ok {
			score += rule.Delta
			bad = append(bad, rule.Explanation)
		}
		if rule, ok := firstMatch(rs.ProtectedIndustry, text); ok {
			score += rule.Delta
			good = append(good, rule.Explanation)
		}
	}

	// Specialization and skill adjustments apply even to owners.
	if rule, ok := firstMatch(rs.ProtectedSpecialization, text); ok {
		score += rule.Delta
		good = append(good, rule.Explanation)
	}
	if rule, ok := firstMatch(rs.TechSkill, text); ok {
		score += rule.Delta
		good = append(good, rule.Explanation)
	}

	if !titleOnly {
		// Tenure
		expCount := len(p.Experiences)
		if expCount > rs.Experience.DeepThreshold {
			score += rs.Experience.DeepDelta
			good = append(good, rs.Experience.DeepExplanation)
		} else if expCount < rs.Experience.EarlyThreshold && !verySafe && !lowRisk {
			score += rs.Experience.EarlyDelta
			bad = append(bad, rs.Experience.EarlyExplanation)
		}

		// Network: first matching tier wins; tiny networks are a penalty
		// unless the owner flag is set.
		followers := p.FollowerCount
		tierMatched := false
		for _, tier := range rs.FollowerTiers {
			if followers > tier.Min {
				score += tier.Delta
				good = append(good, tier.Explanation)
				tierMatched = true
				break
			}
		}
		if !tierMatched && !verySafe && rs.SmallNetwork.Max > 0 && followers < rs.SmallNetwork.Max {
			score += rs.SmallNetwork.Delta
			bad = append(bad, rs.SmallNetwork.Explanation)
		}

		// Entrepreneurial free-text signal; the very-safe tier already
		// counted ownership once.
		if !verySafe {
			if rule, ok := firstMatch(rs.EntrepreneurSignal, text); ok {
				score += rule.Delta
				good = append(good, rule.Explanation)
			}
		}
	}

	// Clamp exactly once, after all additive adjustments.
	if score < rs.MinScore {
		score = rs.MinScore
	}
	if score > rs.MaxScore {
		score = rs.MaxScore
	}

	// Both factor lists are guaranteed non-empty.
	if len(bad) == 0 {
		bad = append(bad, rs.DefaultBad.ForScore(score))
	}
	if len(good) == 0 {
		good = append(good, rs.DefaultGood.ForScore(score))
	}

	return types.ScoreResult{
		Score:       score,
		GoodFactors: good,
		BadFactors:  bad,
	}
}

// firstMatch returns the first rule whose keyword the text contains.
// Array order is the designed precedence; at most one rule per table
// ever contributes.
func firstMatch(table []Rule, text string) (Rule, bool) {
	for _, rule := range table {
		if strings.Contains(text, rule.Keyword) {
			return rule, true
		}
	}
	return Rule{}, false
}
