package clickup

import (
	"github.com/vfg2006/launch-planner-api/infrastructure/integrator/clickup/clickupclient"
	"github.com/vfg2006/launch-planner-api/internal/config"
	"github.com/vfg2006/launch-planner-api/internal/domain"
)

type ClickUpIntegrator interface {
	ListFolders() ([]domain.ClickUpFolder, error)
	CreateTask(listID string, task domain.ClickUpTask) (string, error)
}

type ClickUpService struct {
	cfg    *config.Config
	Client clickupclient.Client
}

func New(cfg *config.Config, client clickupclient.Client) ClickUpIntegrator {
	return &ClickUpService{
		cfg:    cfg,
		Client: client,
	}
}

// ListFolders retorna as pastas do space configurado, com suas listas.
func (s *ClickUpService) ListFolders() ([]domain.ClickUpFolder, error) {
	resp, err := s.Client.GetFolders(s.cfg.ClickUp.SpaceID)
	if err != nil {
		return nil, err
	}

	folders := make([]domain.ClickUpFolder, 0, len(resp.Folders))
	for _, f := range resp.Folders {
		folder := domain.ClickUpFolder{
			ID:   f.ID,
			Name: f.Name,
		}
		for _, l := range f.Lists {
			folder.Lists = append(folder.Lists, domain.ClickUpList{
				ID:        l.ID,
				Name:      l.Name,
				TaskCount: l.TaskCount,
			})
		}
		folders = append(folders, folder)
	}

	return folders, nil
}

// CreateTask cria a tarefa na lista informada e retorna o ID gerado.
func (s *ClickUpService) CreateTask(listID string, task domain.ClickUpTask) (string, error) {
	request := clickupclient.CreateTaskRequest{
		Name:        task.Name,
		Description: task.Description,
		Status:      "to do",
		Priority:    task.Priority,
		Tags:        task.Tags,
	}

	if !task.DueDate.IsZero() {
		request.DueDate = task.DueDate.UnixMilli()
	}

	resp, err := s.Client.CreateTask(listID, request)
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}
