package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDoomResultAccepts(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "full result",
			doc:  `{"score": 72, "roast": "ouch", "goodFactors": ["a"], "badFactors": ["b"]}`,
		},
		{
			name: "roast omitted",
			doc:  `{"score": 10, "goodFactors": [], "badFactors": []}`,
		},
		{
			name: "boundary scores",
			doc:  `{"score": 0, "goodFactors": ["x"], "badFactors": ["y"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateDoomResult(tt.doc))
		})
	}
}

func TestValidateDoomResultRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing score", `{"goodFactors": [], "badFactors": []}`},
		{"missing factor lists", `{"score": 50}`},
		{"score as string", `{"score": "50", "goodFactors": [], "badFactors": []}`},
		{"fractional score", `{"score": 50.5, "goodFactors": [], "badFactors": []}`},
		{"score above range", `{"score": 101, "goodFactors": [], "badFactors": []}`},
		{"score below range", `{"score": -1, "goodFactors": [], "badFactors": []}`},
		{"non-string factor", `{"score": 50, "goodFactors": [1], "badFactors": []}`},
		{"not an object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateDoomResult(tt.doc))
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidateDoomResult(`{"goodFactors": [], "badFactors": []}`)
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected a *ValidationError, got %T", err)
	assert.NotEmpty(t, verr.Errors)
	assert.Contains(t, verr.Error(), "score")
}
