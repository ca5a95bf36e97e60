package checklisting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository/mocks"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestLaunchStepsCatalogue(t *testing.T) {
	assert.Len(t, LaunchSteps, 38)
	assert.Len(t, Phases, 5)

	keys := make(map[string]bool)
	lastPhase, lastOrder := 0, 0
	for _, step := range LaunchSteps {
		assert.False(t, keys[step.Key], "chave duplicada: %s", step.Key)
		keys[step.Key] = true

		assert.GreaterOrEqual(t, step.Phase, 0)
		assert.LessOrEqual(t, step.Phase, 4)

		// A ordem é sequencial dentro de cada fase
		if step.Phase != lastPhase {
			lastPhase, lastOrder = step.Phase, 0
		}
		assert.Equal(t, lastOrder+1, step.Order, "ordem deve ser sequencial em %s", step.Key)
		lastOrder = step.Order

		assert.NotEmpty(t, step.Title)
		assert.NotEmpty(t, step.Items, "todo passo tem checklist de itens: %s", step.Key)

		// Dependências apontam para passos já definidos
		if step.DependsOn != "" {
			assert.True(t, keys[step.DependsOn], "dependência desconhecida em %s: %s", step.Key, step.DependsOn)
		}
	}
}

func TestService_InitializeSteps(t *testing.T) {
	launch := &domain.Launch{ID: "LNC001", Name: "Imersão"}

	t.Run("Lançamento sem checklist - cria os 38 passos com itens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		stepRepo := mocks.NewMockStepRepository(ctrl)
		service := NewService(launchRepo, stepRepo)

		launchRepo.EXPECT().GetLaunchByID("LNC001").Return(launch, nil)
		stepRepo.EXPECT().CountByLaunchID("LNC001").Return(0, nil)
		stepRepo.EXPECT().CreateSteps(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, steps []*domain.LaunchStep) error {
			assert.Len(t, steps, len(LaunchSteps))
			for i, step := range steps {
				assert.Equal(t, "LNC001", step.LaunchID)
				assert.Equal(t, LaunchSteps[i].Key, step.StepKey)
				assert.Equal(t, domain.StepStatusPending, step.Status)
				assert.Len(t, step.Items, len(LaunchSteps[i].Items))
				for idx, item := range step.Items {
					assert.Equal(t, step.ID, item.StepID)
					assert.Equal(t, idx, item.Order)
					assert.False(t, item.Completed)
				}
			}
			return nil
		})

		result, err := service.InitializeSteps(context.Background(), "LNC001")

		assert.NoError(t, err)
		assert.Equal(t, len(LaunchSteps), result.Created)
	})

	t.Run("Checklist já inicializado - não cria nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		stepRepo := mocks.NewMockStepRepository(ctrl)
		service := NewService(launchRepo, stepRepo)

		launchRepo.EXPECT().GetLaunchByID("LNC001").Return(launch, nil)
		stepRepo.EXPECT().CountByLaunchID("LNC001").Return(38, nil)

		result, err := service.InitializeSteps(context.Background(), "LNC001")

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, "Checklist já inicializado", result.Message)
	})

	t.Run("Lançamento inexistente - retorna erro de não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		stepRepo := mocks.NewMockStepRepository(ctrl)
		service := NewService(launchRepo, stepRepo)

		launchRepo.EXPECT().GetLaunchByID("LNC404").Return(nil, nil)

		_, err := service.InitializeSteps(context.Background(), "LNC404")

		assert.ErrorIs(t, err, ErrLaunchNotFound)
	})
}

func TestService_UpdateStep(t *testing.T) {
	completed := true
	statusCompleted := domain.StepStatusCompleted
	statusInvalid := "feito"
	itemID := "ITM001"

	t.Run("Marca item do checklist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stepRepo := mocks.NewMockStepRepository(ctrl)
		service := NewService(mocks.NewMockLaunchRepository(ctrl), stepRepo)

		stepRepo.EXPECT().UpdateItemCompleted("ITM001", true).Return(nil)

		err := service.UpdateStep(&domain.UpdateStepRequest{ItemID: &itemID, Completed: &completed})
		assert.NoError(t, err)
	})

	t.Run("Conclui um passo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		stepRepo := mocks.NewMockStepRepository(ctrl)
		service := NewService(mocks.NewMockLaunchRepository(ctrl), stepRepo)

		stepRepo.EXPECT().UpdateStepStatus("STP001", domain.StepStatusCompleted, true).Return(nil)

		err := service.UpdateStep(&domain.UpdateStepRequest{StepID: "STP001", Status: &statusCompleted})
		assert.NoError(t, err)
	})

	t.Run("Status inválido - retorna erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockLaunchRepository(ctrl), mocks.NewMockStepRepository(ctrl))

		err := service.UpdateStep(&domain.UpdateStepRequest{StepID: "STP001", Status: &statusInvalid})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Sem alvo - retorna erro de dados obrigatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockLaunchRepository(ctrl), mocks.NewMockStepRepository(ctrl))

		err := service.UpdateStep(&domain.UpdateStepRequest{})
		assert.ErrorIs(t, err, ErrMissingTarget)
	})
}

func TestService_GetProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stepRepo := mocks.NewMockStepRepository(ctrl)
	service := NewService(mocks.NewMockLaunchRepository(ctrl), stepRepo)

	stepRepo.EXPECT().ListByLaunchID("LNC001").Return([]*domain.LaunchStep{
		{Phase: 0, Status: domain.StepStatusCompleted},
		{Phase: 0, Status: domain.StepStatusCompleted},
		{Phase: 0, Status: domain.StepStatusPending},
		{Phase: 0, Status: domain.StepStatusInProgress},
		{Phase: 1, Status: domain.StepStatusPending},
	}, nil)

	progress, err := service.GetProgress("LNC001")

	assert.NoError(t, err)
	assert.Len(t, progress, 5)

	assert.Equal(t, 4, progress[0].Total)
	assert.Equal(t, 2, progress[0].Completed)
	assert.Equal(t, 50, progress[0].Percent)

	assert.Equal(t, 1, progress[1].Total)
	assert.Equal(t, 0, progress[1].Percent)

	// Fases sem passos aparecem zeradas
	assert.Equal(t, 0, progress[4].Total)
	assert.Equal(t, 0, progress[4].Percent)
}
