package clickupclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/launch-planner-api/internal/config"
)

type Client interface {
	GetFolders(spaceID string) (*FoldersResponse, error)
	CreateTask(listID string, request CreateTaskRequest) (*CreateTaskResponse, error)
}

type ClickUpClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ClickUpClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
