package clickupclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"
)

type FolderList struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount string `json:"task_count"`
}

type Folder struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Lists []FolderList `json:"lists"`
}

type FoldersResponse struct {
	Folders []Folder `json:"folders"`
}

// GetFolders lista as pastas e listas de um space do ClickUp.
func (c *ClickUpClient) GetFolders(spaceID string) (*FoldersResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.ClickUp.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/space", spaceID, "/folder")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// A API v2 do ClickUp recebe o token direto no header, sem prefixo Bearer.
	req.Header.Set("Authorization", c.config.ClickUp.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response FoldersResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
