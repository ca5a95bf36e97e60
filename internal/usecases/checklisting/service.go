// Package checklisting administra o checklist operacional de 38 passos
// que acompanha cada lançamento
package checklisting

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
	"github.com/vfg2006/launch-planner-api/pkg/utils"
)

type ChecklistService interface {
	InitializeSteps(ctx context.Context, launchID string) (*InitializeResult, error)
	ListSteps(launchID string) ([]*domain.LaunchStep, error)
	UpdateStep(request *domain.UpdateStepRequest) error
	GetProgress(launchID string) ([]domain.PhaseProgress, error)
}

// InitializeResult resume o resultado da inicialização do checklist
type InitializeResult struct {
	LaunchID string `json:"launch_id"`
	Created  int    `json:"created"`
	Message  string `json:"message"`
}

type Service struct {
	launchRepository repository.LaunchRepository
	stepRepository   repository.StepRepository
}

func NewService(
	launchRepository repository.LaunchRepository,
	stepRepository repository.StepRepository,
) ChecklistService {
	return &Service{
		launchRepository: launchRepository,
		stepRepository:   stepRepository,
	}
}

// InitializeSteps materializa o catálogo de passos para um lançamento.
// A operação é idempotente: um lançamento já inicializado não ganha
// passos duplicados
func (s *Service) InitializeSteps(ctx context.Context, launchID string) (*InitializeResult, error) {
	launch, err := s.launchRepository.GetLaunchByID(launchID)
	if err != nil {
		return nil, NewChecklistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar lançamento no banco de dados")
	}
	if launch == nil {
		return nil, NewChecklistError(ErrLaunchNotFound, apiErrors.ErrResourceNotFound, "Lançamento não encontrado")
	}

	count, err := s.stepRepository.CountByLaunchID(launchID)
	if err != nil {
		return nil, NewChecklistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao contar passos existentes")
	}

	if count > 0 {
		return &InitializeResult{
			LaunchID: launchID,
			Created:  0,
			Message:  "Checklist já inicializado",
		}, nil
	}

	steps := make([]*domain.LaunchStep, 0, len(LaunchSteps))
	for _, def := range LaunchSteps {
		stepID, err := utils.GenerateID()
		if err != nil {
			return nil, NewChecklistError(ErrDatabaseOperation, apiErrors.ErrInternalServer, "Falha ao gerar ID do passo")
		}

		step := &domain.LaunchStep{
			ID:       stepID,
			LaunchID: launchID,
			StepKey:  def.Key,
			Phase:    def.Phase,
			Order:    def.Order,
			Status:   domain.StepStatusPending,
		}

		for idx, label := range def.Items {
			itemID, err := utils.GenerateID()
			if err != nil {
				return nil, NewChecklistError(ErrDatabaseOperation, apiErrors.ErrInternalServer, "Falha ao gerar ID do item")
			}

			step.Items = append(step.Items, domain.StepItem{
				ID:     itemID,
				StepID: stepID,
				Label:  label,
				Order:  idx,
			})
		}

		steps = append(steps, step)
	}

	if err := s.stepRepository.CreateSteps(ctx, steps); err != nil {
		return nil, NewChecklistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar checklist no banco de dados")
	}

	logrus.Infof("Checklist do lançamento %s inicializado com %d passos", launchID, len(steps))

	return &InitializeResult{
		LaunchID: launchID,
		Created:  len(steps),
		Message:  "Checklist inicializado",
	}, nil
}

func (s *Service) ListSteps(launchID string) ([]*domain.LaunchStep, error) {
	steps, err := s.stepRepository.ListByLaunchID(launchID)
	if err != nil {
		return nil, NewChecklistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar passos no banco de dados")
	}

	return steps, nil
}

// UpdateStep marca um item do checklist ou muda o status de um passo.
// Quando os dois alvos vêm na mesma requisição, o item tem precedência,
// seguindo o comportamento da interface
func (s *Service) UpdateStep(request *domain.UpdateStepRequest) error {
	if request.ItemID != nil {
		completed := request.Completed != nil && *request.Completed
		if err := s.stepRepository.UpdateItemCompleted(*request.ItemID, completed); err != nil {
			return NewChecklistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar item do checklist")
		}
		return nil
	}

	if request.StepID == "" || request.Status == nil {
		return NewChecklistError(ErrMissingTarget, apiErrors.ErrMissingRequiredData, "Informe um passo com status ou um item do checklist")
	}

	status := *request.Status
	switch status {
	case domain.StepStatusPending, domain.StepStatusInProgress, domain.StepStatusCompleted:
	default:
		return NewChecklistError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, "Status de passo inválido")
	}

	if err := s.stepRepository.UpdateStepStatus(request.StepID, status, status == domain.StepStatusCompleted); err != nil {
		return NewChecklistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar status do passo")
	}

	return nil
}

// GetProgress resume o avanço do checklist por fase do playbook
func (s *Service) GetProgress(launchID string) ([]domain.PhaseProgress, error) {
	steps, err := s.stepRepository.ListByLaunchID(launchID)
	if err != nil {
		return nil, NewChecklistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar passos no banco de dados")
	}

	totals := make(map[int]int)
	completed := make(map[int]int)
	for _, step := range steps {
		totals[step.Phase]++
		if step.Status == domain.StepStatusCompleted {
			completed[step.Phase]++
		}
	}

	progress := make([]domain.PhaseProgress, 0, len(Phases))
	for _, phase := range Phases {
		total := totals[phase.Phase]
		done := completed[phase.Phase]

		percent := 0
		if total > 0 {
			percent = done * 100 / total
		}

		progress = append(progress, domain.PhaseProgress{
			Phase:     phase.Phase,
			Name:      phase.Name,
			Total:     total,
			Completed: done,
			Percent:   percent,
		})
	}

	return progress, nil
}
