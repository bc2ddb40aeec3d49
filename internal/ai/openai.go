package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

type openAIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIClient creates an OpenAI chat-completions client used as the
// relevance-scoring oracle.
func NewOpenAIClient(apiKey, model string) Client {
	if model == "" {
		model = "gpt-4"
	}
	return &openAIClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultOpenAIURL,
		httpClient: &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *openAIClient) Score(ctx context.Context, headline, about, rubric string) (*Decision, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: buildSystemPrompt(),
			},
			{
				Role:    "user",
				Content: buildUserPrompt(headline, about, rubric),
			},
		},
		Temperature: 0.2, // Low temperature for consistency
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal openai request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if chatResp.Error != nil {
		return nil, fmt.Errorf("API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from openai API")
	}

	// Clean the response from potential markdown wrappers
	rawContent := chatResp.Choices[0].Message.Content
	cleanedJSON := cleanMarkdownJSON(rawContent)

	return parseDecision(cleanedJSON)
}

// parseDecision enforces the strict three-field contract. A response
// missing the match verdict is rejected rather than defaulted here; the
// scorer owns the fallback.
func parseDecision(raw string) (*Decision, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decision JSON (raw length: %d): %w", len(raw), err)
	}

	for _, key := range []string{"match", "reason", "score"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("decision JSON missing required field %q", key)
		}
	}

	var decision Decision
	if err := json.Unmarshal([]byte(raw), &decision); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decision JSON: %w", err)
	}

	verdict := strings.ToUpper(strings.TrimSpace(decision.Match))
	if verdict != "YES" && verdict != "NO" {
		return nil, fmt.Errorf("decision match must be YES or NO, got %q", decision.Match)
	}
	decision.Match = verdict
	decision.Reason = strings.TrimSpace(decision.Reason)

	return &decision, nil
}

// cleanMarkdownJSON removes backticks and "json" prefix if the AI model tries to be helpful
func cleanMarkdownJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
