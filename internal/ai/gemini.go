package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tourweaver/internal/itinerary"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiGenerator implements Generator using Google's Gemini models.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator initializes a Gemini client for modelName.
func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	model := client.GenerativeModel(modelName)
	configureModel(model)

	return &GeminiGenerator{client: client, model: model}, nil
}

// configureModel forces JSON output shaped by itinerarySchema.
func configureModel(model *genai.GenerativeModel) {
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = itinerarySchema
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemInstruction))
	// Low temperature keeps the structure stable while leaving room in the prose.
	model.SetTemperature(0.3)
}

// Close cleans up the Gemini client resources.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func (g *GeminiGenerator) GenerateItinerary(ctx context.Context, req itinerary.TripRequest) (*itinerary.Result, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(BuildPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini generation error: %w", ErrNoUsableOutput, err)
	}
	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return decodeOutput(text, req)
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no response candidates from Gemini", ErrNoUsableOutput)
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String(), nil
}
