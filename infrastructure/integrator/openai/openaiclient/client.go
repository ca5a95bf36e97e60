package openaiclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/launch-planner-api/internal/config"
)

type Client interface {
	CreateChatCompletion(request ChatCompletionRequest) (*ChatCompletionResponse, error)
}

type OpenAIClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OpenAIClient{
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		config: cfg,
	}
}
