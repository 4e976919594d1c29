package scoring

import (
	"strings"

	"github.com/jonathan/doomscore/internal/types"
)

// SearchText builds the single lower-cased search string the rule tables are
// matched against: headline, summary, then experience titles. Missing fields
// contribute nothing. The result is padded with one space on each end so
// word-boundary keywords like " ai " match at the string edges too.
func SearchText(p *types.Profile) string {
	if p == nil {
		return "  "
	}

	parts := make([]string, 0, 2+len(p.Experiences))
	if p.Headline != "" {
		parts = append(parts, p.Headline)
	}
	if p.Summary != "" {
		parts = append(parts, p.Summary)
	}
	for _, exp := range p.Experiences {
		if exp.Title != "" {
			parts = append(parts, exp.Title)
		}
	}

	return " " + strings.ToLower(strings.Join(parts, " ")) + " "
}
