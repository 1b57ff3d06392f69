package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator Gemini 后端；每个 key 一个 client，由 KeyRotator 选择
type GeminiGenerator struct {
	clients map[string]*genai.Client
	keys    *KeyRotator
}

// NewGeminiGenerator baseURL 仅用于测试或代理
func NewGeminiGenerator(ctx context.Context, keys *KeyRotator, baseURL string) (*GeminiGenerator, error) {
	if keys.Len() == 0 {
		return nil, errors.New("gemini: no api keys configured")
	}
	g := &GeminiGenerator{clients: make(map[string]*genai.Client, keys.Len()), keys: keys}
	for _, key := range keys.keys {
		cfg := &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		}
		if baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
		}
		client, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		g.clients[key] = client
	}
	return g, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	client := g.clients[g.keys.Next()]

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Structured {
		config.ResponseMIMEType = "application/json"
		config.ResponseJsonSchema = analysisSchema
	}

	result, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return result.Text(), nil
}
