package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/job-matcher/internal/types"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiScorer implements Scorer against the Gemini API. Responses are
// requested as JSON and parsed into a Result.
type GeminiScorer struct {
	client *genai.Client
	model  string
}

// NewGeminiScorer creates a scorer backed by the Gemini API.
func NewGeminiScorer(ctx context.Context, apiKey, model string) (*GeminiScorer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiScorer{client: client, model: model}, nil
}

// Score asks the model to rate the candidate/job fit and returns the
// parsed result.
func (s *GeminiScorer) Score(ctx context.Context, candidate *types.RankCriteria, job *types.JobListing) (*Result, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	prompt := buildScoringPrompt(candidate, job)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}
	return parseScoreResponse(text)
}

// Close releases resources held by the underlying client.
func (s *GeminiScorer) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func buildScoringPrompt(candidate *types.RankCriteria, job *types.JobListing) string {
	var b strings.Builder
	b.WriteString("You are a job matching engine. Rate how well the candidate fits the job.\n")
	b.WriteString("Respond with JSON only, matching this shape:\n")
	b.WriteString(`{"relevance": 0.0, "skill_matches": ["..."], "explanation": "..."}` + "\n")
	b.WriteString("relevance is a float in [0,1]. skill_matches lists the candidate skills the job actually needs.\n\n")

	b.WriteString("CANDIDATE\n")
	if len(candidate.Skills) > 0 {
		b.WriteString("Skills: " + strings.Join(candidate.Skills, ", ") + "\n")
	}
	if candidate.ExperienceLevel != "" {
		b.WriteString("Experience level: " + string(candidate.ExperienceLevel) + "\n")
	}
	if candidate.ResumeText != "" {
		b.WriteString("Resume:\n" + candidate.ResumeText + "\n")
	}

	b.WriteString("\nJOB\n")
	b.WriteString(job.SearchText())
	return b.String()
}

// parseScoreResponse decodes the model's JSON reply. Relevance outside
// [0,1] is clamped rather than rejected.
func parseScoreResponse(text string) (*Result, error) {
	text = CleanJSONBlock(text)

	var result Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w (content: %s)", err, text)
	}
	result.Relevance = clampUnit(result.Relevance)
	return &result, nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
