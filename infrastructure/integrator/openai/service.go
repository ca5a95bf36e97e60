package openai

import (
	"fmt"

	"github.com/vfg2006/launch-planner-api/infrastructure/integrator/openai/openaiclient"
	"github.com/vfg2006/launch-planner-api/internal/config"
)

// CompletionResult é o texto gerado e o consumo de tokens da chamada
type CompletionResult struct {
	Content    string
	TokensUsed int
}

type OpenAIIntegrator interface {
	GenerateCopy(systemPrompt, userPrompt string) (*CompletionResult, error)
}

type OpenAIService struct {
	cfg    *config.Config
	Client openaiclient.Client
}

func New(cfg *config.Config, client openaiclient.Client) OpenAIIntegrator {
	return &OpenAIService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *OpenAIService) GenerateCopy(systemPrompt, userPrompt string) (*CompletionResult, error) {
	request := openaiclient.ChatCompletionRequest{
		Model: s.cfg.OpenAI.Model,
		Messages: []openaiclient.ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   4000,
	}

	resp, err := s.Client.CreateChatCompletion(request)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("resposta sem conteúdo gerado")
	}

	return &CompletionResult{
		Content:    resp.Choices[0].Message.Content,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
