package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oracleServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Messages, 2)

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(url string) *openAIClient {
	return &openAIClient{
		apiKey:     "test-key",
		model:      "gpt-4",
		baseURL:    url,
		httpClient: &http.Client{},
	}
}

func TestScoreParsesStrictDecision(t *testing.T) {
	srv := oracleServer(t, `{"match": "YES", "reason": "coatings background", "score": 0.8}`)
	defer srv.Close()

	d, err := newTestClient(srv.URL).Score(context.Background(), "CEO", "shipyard", "rubric")
	require.NoError(t, err)
	assert.Equal(t, "YES", d.Match)
	assert.Equal(t, "coatings background", d.Reason)
	assert.Equal(t, 0.8, d.Score)
}

func TestScoreStripsMarkdownFences(t *testing.T) {
	srv := oracleServer(t, "```json\n{\"match\": \"no\", \"reason\": \"unrelated\", \"score\": 0.1}\n```")
	defer srv.Close()

	d, err := newTestClient(srv.URL).Score(context.Background(), "Barista", "", "rubric")
	require.NoError(t, err)
	assert.Equal(t, "NO", d.Match)
}

func TestScoreRejectsMissingFields(t *testing.T) {
	srv := oracleServer(t, `{"reason": "no verdict", "score": 0.5}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).Score(context.Background(), "", "", "rubric")
	assert.ErrorContains(t, err, "match")
}

func TestScoreRejectsMalformedJSON(t *testing.T) {
	srv := oracleServer(t, "I think this profile is a strong match!")
	defer srv.Close()

	_, err := newTestClient(srv.URL).Score(context.Background(), "", "", "rubric")
	assert.Error(t, err)
}

func TestScoreRejectsUnknownVerdict(t *testing.T) {
	srv := oracleServer(t, `{"match": "MAYBE", "reason": "?", "score": 0.5}`)
	defer srv.Close()

	_, err := newTestClient(srv.URL).Score(context.Background(), "", "", "rubric")
	assert.ErrorContains(t, err, "YES or NO")
}

func TestScoreSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Score(context.Background(), "", "", "rubric")
	assert.ErrorContains(t, err, "429")
}

func TestCleanMarkdownJSON(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanMarkdownJSON(tt.in))
		})
	}
}
