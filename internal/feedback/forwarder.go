// Package feedback forwards free-text disagreement feedback to a configured
// webhook. Delivery is best-effort: the caller logs failures and never
// surfaces them to the client.
package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/doomscore/internal/types"
)

// Forwarder posts feedback payloads to a spreadsheet webhook.
type Forwarder struct {
	webhookURL string
	httpClient *http.Client
}

// New creates a Forwarder. An empty webhook URL yields an unconfigured
// forwarder; callers check Configured before use.
func New(webhookURL string) *Forwarder {
	return &Forwarder{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Configured reports whether a webhook URL is set.
func (f *Forwarder) Configured() bool {
	return f.webhookURL != ""
}

// payload is the row shape the spreadsheet webhook expects. Optional request
// fields get placeholder values so columns line up.
type payload struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Tier     string `json:"tier"`
	Feedback string `json:"feedback"`
	Email    string `json:"email"`
	URL      string `json:"url"`
}

// Forward delivers one feedback submission to the webhook.
func (f *Forwarder) Forward(ctx context.Context, req *types.FeedbackRequest) error {
	if !f.Configured() {
		return fmt.Errorf("feedback webhook not configured")
	}

	p := payload{
		Name:     req.Name,
		Score:    req.Score,
		Tier:     req.Tier,
		Feedback: req.Feedback,
		Email:    req.Email,
		URL:      req.URL,
	}
	if p.Name == "" {
		p.Name = "Unknown"
	}
	if p.Tier == "" {
		p.Tier = "Unknown"
	}

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
