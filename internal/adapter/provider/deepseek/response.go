package deepseek

import "github.com/lexifusion/lexifusion-backend/internal/fusion"

// Wire types for the DeepSeek chat completions API. The API is
// OpenAI-compatible: one POST with a messages array, one JSON response with
// a choices array.

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Choices []chatChoice `json:"choices"`
	Error   *apiError    `json:"error,omitempty"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// resultsEnvelope is the JSON object the model is instructed to produce:
// a results array holding up to three fusion candidates.
type resultsEnvelope struct {
	Results []fusion.RawCandidate `json:"results"`
}
