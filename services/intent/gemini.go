// File: services/intent/gemini.go
package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"bookline/models"
)

// GeminiExtractor implements Extractor using a Gemini model prompted to emit
// the intent fields as JSON.
type GeminiExtractor struct {
	model *genai.GenerativeModel
}

// NewGeminiExtractor builds an extractor bound to the given API key.
func NewGeminiExtractor(ctx context.Context, apiKey string) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiExtractor{model: client.GenerativeModel("models/gemini-1.5-pro")}, nil
}

const extractionPrompt = `You extract appointment booking intents.
Today's date is %s.
From the user text below, return ONLY a JSON object with these keys:
  provider_name: the provider the user wants (empty string if not mentioned)
  service_type: one of %s (empty string if unclear)
  date: the requested date as YYYY-MM-DD, resolving relative expressions like
        "tomorrow" or "next Friday" against today's date (empty if unclear)
  time_slot: the requested time verbatim, e.g. "morning" or "2:30 pm"
             (empty if not mentioned)
  confidence: "high", "medium" or "low"
No markdown fences, no commentary.

User text: %q`

func (g *GeminiExtractor) ExtractIntent(ctx context.Context, text string) (*models.IntentData, error) {
	prompt := fmt.Sprintf(extractionPrompt,
		time.Now().Format("2006-01-02"),
		strings.Join(models.KnownServiceTypes, ", "),
		text,
	)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	raw := stripFences(sb.String())
	var data models.IntentData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to parse intent JSON: %w", err)
	}
	data.ServiceType = strings.ToLower(strings.TrimSpace(data.ServiceType))
	if data.Confidence == "" {
		data.Confidence = "medium"
	}
	return &data, nil
}

// stripFences tolerates models that wrap JSON in markdown code fences anyway.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
