package exporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	clickupmocks "github.com/vfg2006/launch-planner-api/infrastructure/integrator/clickup/mocks"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository/mocks"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/checklisting"
	"github.com/vfg2006/launch-planner-api/internal/usecases/communicating"
	"go.uber.org/mock/gomock"
)

func testLaunch() *domain.Launch {
	return &domain.Launch{
		ID:        "LNC001",
		Name:      "Imersão Identidade Visual",
		EventDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
}

type serviceMocks struct {
	launchRepo        *mocks.MockLaunchRepository
	communicationRepo *mocks.MockCommunicationRepository
	stepRepo          *mocks.MockStepRepository
	clickupService    *clickupmocks.MockClickUpIntegrator
}

func newTestService(t *testing.T) (ExportService, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		launchRepo:        mocks.NewMockLaunchRepository(ctrl),
		communicationRepo: mocks.NewMockCommunicationRepository(ctrl),
		stepRepo:          mocks.NewMockStepRepository(ctrl),
		clickupService:    clickupmocks.NewMockClickUpIntegrator(ctrl),
	}
	service := NewService(m.launchRepo, m.communicationRepo, m.stepRepo, m.clickupService)
	return service, m
}

func calendarActionCount(eventDate time.Time) int {
	total := 0
	for _, day := range communicating.GenerateCalendar(eventDate) {
		total += len(day.Actions)
	}
	return total
}

func TestBuildTasks(t *testing.T) {
	t.Run("Cronograma completo vira tarefas com prioridade e tags", func(t *testing.T) {
		service, m := newTestService(t)
		launch := testLaunch()

		m.launchRepo.EXPECT().GetLaunchByID("LNC001").Return(launch, nil)
		m.communicationRepo.EXPECT().ListByLaunchID("LNC001").Return(nil, nil)

		tasks, err := service.BuildTasks(&domain.ExportRequest{LaunchID: "LNC001"})

		assert.NoError(t, err)
		assert.Len(t, tasks, calendarActionCount(launch.EventDate))

		for _, task := range tasks {
			assert.NotEmpty(t, task.Name)
			assert.Contains(t, []int{2, 3, 4}, task.Priority)
			assert.Contains(t, task.Tags, "Imersão Identidade Visual")
			assert.False(t, task.DueDate.IsZero())
		}

		// O dia do evento (41) cai na fase 4 e todas as ações são de alta prioridade
		eventDue := launch.EventDate.AddDate(0, 0, -3)
		for _, task := range tasks {
			if task.DueDate.Equal(eventDue) {
				assert.Equal(t, 2, task.Priority)
				assert.Contains(t, task.Tags, "fase-4")
			}
		}
	})

	t.Run("Conteúdo aprovado substitui a descrição da ação", func(t *testing.T) {
		service, m := newTestService(t)
		launch := testLaunch()

		calendar := communicating.GenerateCalendar(launch.EventDate)
		first := calendar[0]
		action := first.Actions[0]

		m.launchRepo.EXPECT().GetLaunchByID("LNC001").Return(launch, nil)
		m.communicationRepo.EXPECT().ListByLaunchID("LNC001").Return([]*domain.Communication{
			{
				ID:       "COM001",
				LaunchID: "LNC001",
				Day:      first.Day,
				Channel:  action.Channel,
				Type:     action.Type,
				Status:   domain.CommunicationStatusApproved,
				Content:  "Copy aprovada pela equipe",
			},
		}, nil)

		tasks, err := service.BuildTasks(&domain.ExportRequest{LaunchID: "LNC001"})

		assert.NoError(t, err)
		assert.Contains(t, tasks[0].Description, "Copy aprovada pela equipe")
		assert.Contains(t, tasks[0].Description, "Canal:")
	})

	t.Run("Checklist entra na exportação sem os passos concluídos", func(t *testing.T) {
		service, m := newTestService(t)
		launch := testLaunch()
		pending := checklisting.LaunchSteps[0]

		m.launchRepo.EXPECT().GetLaunchByID("LNC001").Return(launch, nil)
		m.communicationRepo.EXPECT().ListByLaunchID("LNC001").Return(nil, nil)
		m.stepRepo.EXPECT().ListByLaunchID("LNC001").Return([]*domain.LaunchStep{
			{ID: "STP001", LaunchID: "LNC001", StepKey: pending.Key, Phase: pending.Phase, Status: domain.StepStatusPending},
			{ID: "STP002", LaunchID: "LNC001", StepKey: checklisting.LaunchSteps[1].Key, Phase: checklisting.LaunchSteps[1].Phase, Status: domain.StepStatusCompleted},
		}, nil)

		tasks, err := service.BuildTasks(&domain.ExportRequest{LaunchID: "LNC001", IncludeSteps: true})

		assert.NoError(t, err)
		assert.Len(t, tasks, calendarActionCount(launch.EventDate)+1)

		last := tasks[len(tasks)-1]
		assert.Contains(t, last.Name, pending.Title)
		assert.Contains(t, last.Tags, "checklist")
		assert.Equal(t, defaultTaskPriority, last.Priority)
	})

	t.Run("Lançamento inexistente retorna erro", func(t *testing.T) {
		service, m := newTestService(t)

		m.launchRepo.EXPECT().GetLaunchByID("LNC404").Return(nil, nil)

		tasks, err := service.BuildTasks(&domain.ExportRequest{LaunchID: "LNC404"})

		assert.Nil(t, tasks)
		assert.ErrorIs(t, err, ErrLaunchNotFound)
	})
}

func TestExportLaunch(t *testing.T) {
	t.Run("Sem lista informada retorna erro", func(t *testing.T) {
		service, _ := newTestService(t)

		result, err := service.ExportLaunch(&domain.ExportRequest{LaunchID: "LNC001", ListID: "  "})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrListRequired)
	})

	t.Run("Falhas individuais não interrompem a exportação", func(t *testing.T) {
		service, m := newTestService(t)
		launch := testLaunch()

		m.launchRepo.EXPECT().GetLaunchByID("LNC001").Return(launch, nil)
		m.communicationRepo.EXPECT().ListByLaunchID("LNC001").Return(nil, nil)

		total := calendarActionCount(launch.EventDate)
		calls := 0
		m.clickupService.EXPECT().
			CreateTask("LST123", gomock.Any()).
			Times(total).
			DoAndReturn(func(_ string, _ domain.ClickUpTask) (string, error) {
				calls++
				if calls == 1 {
					return "", assert.AnError
				}
				return "TASK123", nil
			})

		result, err := service.ExportLaunch(&domain.ExportRequest{LaunchID: "LNC001", ListID: "LST123"})

		assert.NoError(t, err)
		assert.Equal(t, total, result.Total)
		assert.Equal(t, total-1, result.Created)
		assert.Equal(t, 1, result.Failed)
		assert.Len(t, result.Results, total)
		assert.False(t, result.Results[0].Success)
		assert.NotEmpty(t, result.Results[0].Error)
		assert.True(t, result.Results[1].Success)
		assert.Equal(t, "TASK123", result.Results[1].TaskID)
	})
}

func TestListFolders(t *testing.T) {
	t.Run("Repassa as pastas do integrador", func(t *testing.T) {
		service, m := newTestService(t)

		folders := []domain.ClickUpFolder{
			{ID: "FLD1", Name: "Lançamentos", Lists: []domain.ClickUpList{{ID: "LST123", Name: "Imersão"}}},
		}
		m.clickupService.EXPECT().ListFolders().Return(folders, nil)

		got, err := service.ListFolders()

		assert.NoError(t, err)
		assert.Equal(t, folders, got)
	})

	t.Run("Erro do integrador vira erro de serviço externo", func(t *testing.T) {
		service, m := newTestService(t)

		m.clickupService.EXPECT().ListFolders().Return(nil, assert.AnError)

		got, err := service.ListFolders()

		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrExternalService)
	})
}
