package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuleset_BuiltinVersions(t *testing.T) {
	for _, version := range []string{"v1", "v2"} {
		t.Run(version, func(t *testing.T) {
			rs, err := LoadRuleset(version)
			require.NoError(t, err)
			assert.Equal(t, version, rs.Version)
			assert.Equal(t, 50, rs.BaseScore)
			assert.Equal(t, 12, rs.MinScore)
			assert.Equal(t, 94, rs.MaxScore)
			assert.NotEmpty(t, rs.HighRisk)
			assert.NotEmpty(t, rs.MediumRisk)
		})
	}
}

func TestLoadRuleset_UnknownVersion(t *testing.T) {
	_, err := LoadRuleset("v99")
	assert.Error(t, err)
}

func TestRulesetValidate(t *testing.T) {
	valid := func() *Ruleset {
		return &Ruleset{
			Version:    "test",
			BaseScore:  50,
			MinScore:   12,
			MaxScore:   94,
			HighRisk:   []Rule{{Keyword: "clerk", Delta: 20, Explanation: "x"}},
			MediumRisk: []Rule{{Keyword: "manager", Delta: 10, Explanation: "x"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Ruleset)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Ruleset) {},
		},
		{
			name:    "missing version",
			mutate:  func(rs *Ruleset) { rs.Version = "" },
			wantErr: "version",
		},
		{
			name:    "inverted clamp range",
			mutate:  func(rs *Ruleset) { rs.MinScore = 95 },
			wantErr: "min_score",
		},
		{
			name:    "base outside range",
			mutate:  func(rs *Ruleset) { rs.BaseScore = 200 },
			wantErr: "base_score",
		},
		{
			name:    "empty high risk table",
			mutate:  func(rs *Ruleset) { rs.HighRisk = nil },
			wantErr: "non-empty",
		},
		{
			name:    "rule without keyword",
			mutate:  func(rs *Ruleset) { rs.MediumRisk = []Rule{{Delta: 10, Explanation: "x"}} },
			wantErr: "empty keyword",
		},
		{
			name:    "rule without explanation",
			mutate:  func(rs *Ruleset) { rs.MediumRisk = []Rule{{Keyword: "manager", Delta: 10}} },
			wantErr: "empty explanation",
		},
		{
			name:    "rule with zero delta",
			mutate:  func(rs *Ruleset) { rs.MediumRisk = []Rule{{Keyword: "manager", Explanation: "x"}} },
			wantErr: "zero delta",
		},
		{
			name: "unsorted follower tiers",
			mutate: func(rs *Ruleset) {
				rs.FollowerTiers = []FollowerTier{{Min: 5000, Delta: -4, Explanation: "x"}, {Min: 10000, Delta: -8, Explanation: "x"}}
			},
			wantErr: "largest-first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := valid()
			tt.mutate(rs)
			err := rs.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDefaultFactorsForScore(t *testing.T) {
	d := DefaultFactors{Safe: "safe", Mid: "mid", Doomed: "doomed"}

	assert.Equal(t, "safe", d.ForScore(12))
	assert.Equal(t, "safe", d.ForScore(40))
	assert.Equal(t, "mid", d.ForScore(41))
	assert.Equal(t, "mid", d.ForScore(60))
	assert.Equal(t, "doomed", d.ForScore(61))
	assert.Equal(t, "doomed", d.ForScore(94))
}
