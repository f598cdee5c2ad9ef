package service

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

const systemPrompt = "You are a legislative analyst. Summarize the provided text of an Indian Bill or Question. " +
	"Provide a concise summary (max 100 words) covering the document's key objectives, " +
	"main provisions, and intended impact. Use clear, formal language."

// GeminiProvider meringkas lewat Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is empty")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (g *GeminiProvider) Summarize(ctx context.Context, text string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text("Please summarize the following text:\n\n---\n\n"+text), cfg)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}
