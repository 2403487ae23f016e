// Package deepseek adapts the DeepSeek chat completions API into the
// fusion engine's AI provider contract: two words in, up to three validated
// fusion candidates out.
package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lexifusion/lexifusion-backend/internal/domain"
	"github.com/lexifusion/lexifusion-backend/internal/fusion"
)

const (
	defaultBaseURL = "https://api.deepseek.com/chat/completions"
	defaultModel   = "deepseek-chat"

	requestTemperature = 0.7
	requestMaxTokens   = 1200
)

// ErrEmptyResponse reports a reply that carried no usable candidate: an
// empty body, an empty message, or a results array with nothing in it.
var ErrEmptyResponse = errors.New("deepseek: empty response")

// Provider calls the DeepSeek API to fuse word pairs. It performs no
// retries and no caching; both are the orchestrator's concern.
type Provider struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider against the public DeepSeek endpoint.
// model may be empty, in which case the default chat model is used.
func NewProvider(apiKey, model string, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, apiKey, model, logger)
}

// NewProviderWithURL creates a Provider with a custom endpoint (for testing).
func NewProviderWithURL(baseURL, apiKey, model string, logger *slog.Logger) *Provider {
	if model == "" {
		model = defaultModel
	}
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "deepseek"),
	}
}

// SetTimeout overrides the HTTP client timeout.
func (p *Provider) SetTimeout(d time.Duration) {
	p.httpClient.Timeout = d
}

// FuseWords asks the model for up to three fusion candidates for a word
// pair. Candidates are validated, capped at three, and deduplicated by
// case-insensitive result text with the first occurrence kept. Transport
// and parse errors propagate unmodified; the caller decides how to degrade.
func (p *Provider) FuseWords(ctx context.Context, wordA, wordB domain.WordRef) ([]fusion.Candidate, error) {
	p.log.DebugContext(ctx, "deepseek fusion request",
		slog.String("word_a", wordA.Word),
		slog.String("word_b", wordB.Word),
	)

	content, err := p.complete(ctx, buildFusionPrompt(wordA, wordB))
	if err != nil {
		p.log.ErrorContext(ctx, "deepseek request failed",
			slog.String("word_a", wordA.Word),
			slog.String("word_b", wordB.Word),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	candidates, err := parseCandidates(content)
	if err != nil {
		return nil, err
	}

	results := make([]fusion.Candidate, 0, len(candidates))
	for _, raw := range candidates {
		results = append(results, fusion.ValidateCandidate(raw, wordA, wordB))
	}
	results = dedupeByResult(results)

	p.log.DebugContext(ctx, "deepseek fusion response",
		slog.String("word_a", wordA.Word),
		slog.String("word_b", wordB.Word),
		slog.Int("candidates", len(results)),
	)

	return results, nil
}

// complete performs one chat completion and returns the message content.
func (p *Provider) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    requestTemperature,
		MaxTokens:      requestMaxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("deepseek: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("deepseek: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepseek: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("deepseek: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepseek: unexpected status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("deepseek: decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("deepseek: api error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}

	return parsed.Choices[0].Message.Content, nil
}

// parseCandidates decodes the model output into raw candidates. The
// expected shape is an object with a results array; a top-level object that
// itself looks like a candidate is accepted as the legacy single-result
// shape. An object resembling neither is an empty response.
func parseCandidates(content string) ([]fusion.RawCandidate, error) {
	var envelope resultsEnvelope
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		return nil, fmt.Errorf("deepseek: parse content: %w", err)
	}

	if len(envelope.Results) > 0 {
		results := envelope.Results
		if len(results) > fusion.MaxResults {
			results = results[:fusion.MaxResults]
		}
		return results, nil
	}

	var legacy fusion.RawCandidate
	if err := json.Unmarshal([]byte(content), &legacy); err != nil {
		return nil, fmt.Errorf("deepseek: parse legacy content: %w", err)
	}
	if !resemblesCandidate(legacy) {
		return nil, ErrEmptyResponse
	}
	return []fusion.RawCandidate{legacy}, nil
}

// resemblesCandidate reports whether a decoded object carries at least one
// recognizable candidate field, the condition for the legacy branch.
func resemblesCandidate(c fusion.RawCandidate) bool {
	return c.Result != "" || c.Meaning != "" || c.Concept != "" ||
		c.Association != "" || c.Example != "" || c.Icon != "" ||
		c.Type != "" || len(c.SuggestedWords) > 0
}

// dedupeByResult drops candidates whose result text repeats
// case-insensitively, keeping the first occurrence and the original order.
func dedupeByResult(candidates []fusion.Candidate) []fusion.Candidate {
	seen := make(map[string]bool, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		key := strings.ToLower(c.Result)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
