// Package exporting converte o cronograma e o checklist de um lançamento em
// tarefas do ClickUp
package exporting

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/infrastructure/integrator/clickup"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/checklisting"
	"github.com/vfg2006/launch-planner-api/internal/usecases/communicating"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
)

// Prioridades numéricas do ClickUp: 1 urgente, 2 alta, 3 normal, 4 baixa
var clickupPriorities = map[domain.Priority]int{
	domain.PriorityHigh:   2,
	domain.PriorityMedium: 3,
	domain.PriorityLow:    4,
}

const defaultTaskPriority = 3

type ExportService interface {
	ListFolders() ([]domain.ClickUpFolder, error)
	BuildTasks(request *domain.ExportRequest) ([]domain.ClickUpTask, error)
	ExportLaunch(request *domain.ExportRequest) (*domain.ExportResult, error)
}

type Service struct {
	launchRepository        repository.LaunchRepository
	communicationRepository repository.CommunicationRepository
	stepRepository          repository.StepRepository
	clickupService          clickup.ClickUpIntegrator
}

func NewService(
	launchRepository repository.LaunchRepository,
	communicationRepository repository.CommunicationRepository,
	stepRepository repository.StepRepository,
	clickupService clickup.ClickUpIntegrator,
) ExportService {
	return &Service{
		launchRepository:        launchRepository,
		communicationRepository: communicationRepository,
		stepRepository:          stepRepository,
		clickupService:          clickupService,
	}
}

// ListFolders lista as pastas do space configurado no ClickUp
func (s *Service) ListFolders() ([]domain.ClickUpFolder, error) {
	folders, err := s.clickupService.ListFolders()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar pastas do ClickUp")
		return nil, NewExportError(ErrExternalService, apiErrors.ErrExternalService, "Falha ao consultar pastas no ClickUp")
	}
	return folders, nil
}

// BuildTasks achata o cronograma de comunicação do lançamento (e, quando
// solicitado, os passos pendentes do checklist) na lista de tarefas que
// seria exportada, sem criar nada no ClickUp
func (s *Service) BuildTasks(request *domain.ExportRequest) ([]domain.ClickUpTask, error) {
	launch, err := s.launchRepository.GetLaunchByID(request.LaunchID)
	if err != nil {
		return nil, NewExportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lançamento no banco de dados")
	}
	if launch == nil {
		return nil, NewExportError(ErrLaunchNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	approved, err := s.approvedContentByAction(request.LaunchID)
	if err != nil {
		return nil, err
	}

	tasks := s.calendarTasks(launch, approved)

	if request.IncludeSteps {
		stepTasks, err := s.checklistTasks(launch)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, stepTasks...)
	}

	return tasks, nil
}

// ExportLaunch cria as tarefas na lista informada, uma a uma, e agrega o
// resultado. Falhas individuais não interrompem a exportação
func (s *Service) ExportLaunch(request *domain.ExportRequest) (*domain.ExportResult, error) {
	if strings.TrimSpace(request.ListID) == "" {
		return nil, NewExportError(ErrListRequired, apiErrors.ErrMissingRequiredData, "Informe o ID da lista do ClickUp")
	}

	tasks, err := s.BuildTasks(request)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, NewExportError(ErrNothingToExport, apiErrors.ErrInvalidRequest, "Nenhuma tarefa para exportar")
	}

	result := &domain.ExportResult{
		Total:   len(tasks),
		Results: make([]domain.ExportTaskResult, 0, len(tasks)),
	}

	for _, task := range tasks {
		taskID, err := s.clickupService.CreateTask(request.ListID, task)
		if err != nil {
			logrus.WithError(err).WithField("task", task.Name).Warn("Erro ao criar tarefa no ClickUp")
			result.Failed++
			result.Results = append(result.Results, domain.ExportTaskResult{
				Success: false,
				Name:    task.Name,
				Error:   err.Error(),
			})
			continue
		}

		result.Created++
		result.Results = append(result.Results, domain.ExportTaskResult{
			Success: true,
			TaskID:  taskID,
			Name:    task.Name,
		})
	}

	logrus.WithFields(logrus.Fields{
		"launch_id": request.LaunchID,
		"total":     result.Total,
		"created":   result.Created,
		"failed":    result.Failed,
	}).Info("Exportação para o ClickUp concluída")

	return result, nil
}

// approvedContentByAction indexa o conteúdo aprovado das comunicações já
// persistidas por dia, canal e tipo da ação
func (s *Service) approvedContentByAction(launchID string) (map[string]string, error) {
	communications, err := s.communicationRepository.ListByLaunchID(launchID)
	if err != nil {
		return nil, NewExportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar comunicações no banco de dados")
	}

	approved := make(map[string]string)
	for _, c := range communications {
		if c.Status != domain.CommunicationStatusApproved || c.Content == "" {
			continue
		}
		approved[actionKey(c.Day, c.Channel, c.Type)] = c.Content
	}
	return approved, nil
}

func actionKey(day int, channel domain.Channel, actionType string) string {
	return fmt.Sprintf("%d|%s|%s", day, channel, actionType)
}

func (s *Service) calendarTasks(launch *domain.Launch, approved map[string]string) []domain.ClickUpTask {
	var tasks []domain.ClickUpTask

	for _, day := range communicating.GenerateCalendar(launch.EventDate) {
		for _, action := range day.Actions {
			description := action.Description
			if content, ok := approved[actionKey(day.Day, action.Channel, action.Type)]; ok {
				description = fmt.Sprintf("%s\n\n---\nCanal: %s\nTipo: %s\nDia: %d", content, action.Channel, action.Type, day.Day)
			}

			tags := []string{launch.Name, fmt.Sprintf("fase-%d", exportPhase(day.Day)), string(action.Channel)}
			if domain.IsTaskAction(action.Type) {
				tags = append(tags, "operacional")
			}

			tasks = append(tasks, domain.ClickUpTask{
				Name:        fmt.Sprintf("[%s] %s", strings.ToUpper(string(action.Channel)), action.Title),
				Description: description,
				Priority:    priorityFor(action.Priority),
				DueDate:     day.Date,
				Tags:        tags,
			})
		}
	}

	return tasks
}

// checklistTasks converte os passos ainda não concluídos do checklist. O
// título e a descrição vêm do catálogo de passos, a instância persistida
// só carrega a chave e o status
func (s *Service) checklistTasks(launch *domain.Launch) ([]domain.ClickUpTask, error) {
	steps, err := s.stepRepository.ListByLaunchID(launch.ID)
	if err != nil {
		return nil, NewExportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar passos no banco de dados")
	}

	definitions := make(map[string]domain.StepDefinition, len(checklisting.LaunchSteps))
	for _, def := range checklisting.LaunchSteps {
		definitions[def.Key] = def
	}

	var tasks []domain.ClickUpTask
	for _, step := range steps {
		if step.Status == domain.StepStatusCompleted {
			continue
		}

		def, ok := definitions[step.StepKey]
		if !ok {
			logrus.WithField("step_key", step.StepKey).Warn("Passo sem definição no catálogo, ignorando na exportação")
			continue
		}

		tasks = append(tasks, domain.ClickUpTask{
			Name:        fmt.Sprintf("[Fase %d] %s", step.Phase, def.Title),
			Description: def.Description,
			Priority:    defaultTaskPriority,
			Tags:        []string{launch.Name, fmt.Sprintf("fase-%d", step.Phase), "checklist"},
		})
	}

	return tasks, nil
}

func priorityFor(p domain.Priority) int {
	if v, ok := clickupPriorities[p]; ok {
		return v
	}
	return defaultTaskPriority
}

// exportPhase mapeia o dia do cronograma para o número de fase usado nas
// tags de exportação
func exportPhase(day int) int {
	switch {
	case day <= 10:
		return 1
	case day <= 35:
		return 2
	case day <= 40:
		return 3
	default:
		return 4
	}
}
