package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/doomscore/internal/llm"
	"github.com/jonathan/doomscore/internal/schemas"
	"github.com/jonathan/doomscore/internal/types"
)

// Clamp bounds for model-produced scores. Wider than the heuristic range:
// the model is allowed to call someone nearly untouchable or nearly cooked,
// but never exactly 0 or 100.
const (
	llmMinScore = 5
	llmMaxScore = 98
)

// ParseDoomResult decodes an LLM completion into a ScoreResult. The decode
// is permissive about transport noise (code fences, commentary around the
// object) and strict about shape: the candidate object must pass schema
// validation before it is unmarshaled. Any failure returns an error; the
// caller falls back rather than surfacing parse details.
func ParseDoomResult(raw string) (*types.ScoreResult, error) {
	candidate := llm.ExtractJSONObject(llm.CleanJSONBlock(raw))
	if candidate == "" {
		return nil, fmt.Errorf("no JSON object in completion")
	}

	if err := schemas.ValidateDoomResult(candidate); err != nil {
		return nil, fmt.Errorf("completion failed schema validation: %w", err)
	}

	var result types.ScoreResult
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		// Validated JSON that fails to unmarshal would be a schema bug.
		return nil, fmt.Errorf("failed to decode completion: %w", err)
	}

	if result.Score < llmMinScore {
		result.Score = llmMinScore
	}
	if result.Score > llmMaxScore {
		result.Score = llmMaxScore
	}

	return &result, nil
}
