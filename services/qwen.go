package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// QwenClient ModelScope Qwen2.5 客户端（OpenAI兼容端点）
type QwenClient struct {
	Chat llms.Model
}

func NewQwenClient(apiKey, apiEndpoint string) (*QwenClient, error) {
	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel("Qwen/Qwen2.5-7B-Instruct"),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Qwen client: %w", err)
	}

	return &QwenClient{
		Chat: model,
	}, nil
}
