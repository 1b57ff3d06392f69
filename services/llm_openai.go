package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIGenerator OpenAI 兼容接口的 chat completions 后端
type OpenAIGenerator struct {
	client *openai.Client
	keys   *KeyRotator
}

// NewOpenAIGenerator baseURL 为空时使用官方地址；重试由 NarrativeRequester 的 fallback 负责
func NewOpenAIGenerator(baseURL string, keys *KeyRotator, timeout time.Duration) *OpenAIGenerator {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}
	client := openai.NewClient(opts...)
	return &OpenAIGenerator{client: &client, keys: keys}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfSystem: &openai.ChatCompletionSystemMessageParam{
				Role:    "system",
				Content: openai.ChatCompletionSystemMessageParamContentUnion{OfString: openai.String(req.System)},
			}},
			{OfUser: &openai.ChatCompletionUserMessageParam{
				Role:    "user",
				Content: openai.ChatCompletionUserMessageParamContentUnion{OfString: openai.String(req.Prompt)},
			}},
		},
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(req.MaxTokens)
	}
	if req.Structured {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        analysisSchemaName,
					Description: openai.String(analysisSchemaDescription),
					Schema:      analysisSchema,
					Strict:      openai.Bool(true),
				},
			},
		}
	}

	var opts []option.RequestOption
	if key := g.keys.Next(); key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}

	resp, err := g.client.Chat.Completions.New(ctx, params, opts...)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
