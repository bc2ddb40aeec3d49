package ai

import (
	"context"
	"fmt"
)

// Decision is the oracle's verdict for a single profile. Match is the
// literal "YES" or "NO" returned by the model.
type Decision struct {
	Match  string  `json:"match"`
	Reason string  `json:"reason"`
	Score  float64 `json:"score"`
}

// Client is the interface for AI providers
type Client interface {
	// Score evaluates how well a profile's headline and about text match
	// the rubric, returning a strict three-field decision.
	Score(ctx context.Context, headline, about, rubric string) (*Decision, error)
}

// buildSystemPrompt creates the system instruction for the AI model
func buildSystemPrompt() string {
	return `You are an expert B2B sales assistant.
You will be given a LinkedIn profile (headline and about section) and a target client description.
Evaluate how well the person or company matches the description.

Task:
1. Decide whether the profile aligns with the target (YES/NO).
2. Explain briefly why or why not.
3. Give a score from 0 to 1 indicating how closely they match (e.g. 0.2 = weak match, 0.9 = strong match).
4. Respond with ONLY a valid, raw JSON object in the exact format {"match": "YES or NO", "reason": "...", "score": float}. Do NOT wrap the JSON in markdown blocks. Output just the literal JSON string starting with { and ending with }.`
}

// buildUserPrompt creates the user message combining the profile and the rubric
func buildUserPrompt(headline, about, rubric string) string {
	return fmt.Sprintf("--- Profile ---\nHeadline: %s\nAbout: %s\n\n--- Target Client Description ---\n%s", headline, about, rubric)
}
