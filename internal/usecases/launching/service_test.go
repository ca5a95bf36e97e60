package launching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository/mocks"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func validForm() *domain.LaunchFormData {
	return &domain.LaunchFormData{
		Name:          "Imersão Tráfego Pago",
		Niche:         "Marketing Digital",
		Expert:        "Especialista",
		Followers:     120000,
		TargetTickets: 500,
		Budget:        50000,
		SaleDays:      40,
		EventDate:     "2025-06-15",
		EventDuration: 2,
		EventPlatform: "Zoom",
		MainProduct:   domain.ProductInput{Name: "Mentoria", Price: 4997},
		OrderBumps: domain.OrderBumpsInput{
			Gravacoes:  domain.OrderBumpInput{Enabled: true, Price: 197, HasCashback: true},
			Debriefing: domain.OrderBumpInput{Enabled: true, Price: 97},
		},
		Downsell: domain.OptionalOffer{Enabled: true, Name: "Curso Gravado", Price: 497},
		Batches: []domain.BatchConfig{
			{Name: "Lote 1", Order: 1, Price: 97, Quantity: 100},
			{Name: "Lote 2", Order: 2, Price: 127, Quantity: 400},
		},
	}
}

func TestService_CreateLaunch(t *testing.T) {
	t.Run("Cria lançamento com métricas derivadas e lote 1 ativo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		service := NewService(launchRepo)

		launchRepo.EXPECT().
			CreateLaunch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, launch *domain.Launch) error {
				assert.NotEmpty(t, launch.ID)

				// 70% da meta via tráfego: 350 ingressos a 50000 de verba
				assert.InDelta(t, 50000.0/350, launch.MaxCPA, 1e-9)
				// ceil(500/40) = 13 por dia corrido
				assert.Equal(t, 13, launch.DailyPacing)
				assert.Equal(t, domain.LaunchStatusActive, launch.Status)
				assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), launch.EventDate)

				assert.Equal(t, "active", launch.TicketBatches[0].Status)
				assert.Equal(t, "upcoming", launch.TicketBatches[1].Status)

				// Produto principal + downsell habilitado
				assert.Len(t, launch.Products, 2)
				assert.Equal(t, domain.ProductTypeMain, launch.Products[0].Type)

				// Só o bump de gravações carrega cashback, no valor do bump
				assert.Len(t, launch.OrderBumps, 2)
				assert.Equal(t, "gravacoes", launch.OrderBumps[0].Name)
				assert.True(t, launch.OrderBumps[0].HasCashback)
				assert.Equal(t, 197.0, launch.OrderBumps[0].CashbackAmount)
				assert.False(t, launch.OrderBumps[1].HasCashback)
				return nil
			})

		launch, err := service.CreateLaunch(context.Background(), validForm())

		assert.NoError(t, err)
		assert.NotNil(t, launch)
	})

	t.Run("Nome vazio - retorna erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockLaunchRepository(ctrl))

		form := validForm()
		form.Name = "   "

		_, err := service.CreateLaunch(context.Background(), form)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("Data do evento inválida - retorna erro de formato", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockLaunchRepository(ctrl))

		form := validForm()
		form.EventDate = "15/06/2025"

		_, err := service.CreateLaunch(context.Background(), form)
		assert.ErrorIs(t, err, ErrInvalidEventDate)
	})
}

func TestService_UpdateLaunch(t *testing.T) {
	existing := func() *domain.Launch {
		return &domain.Launch{
			ID:            "LNC001",
			Name:          "Imersão Tráfego Pago",
			TargetTickets: 500,
			Budget:        50000,
			SaleDays:      40,
			MaxCPA:        50000.0 / 350,
			DailyPacing:   13,
			Status:        domain.LaunchStatusActive,
		}
	}

	t.Run("Alterar a meta recalcula CPA máximo e ritmo diário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		service := NewService(launchRepo)

		launchRepo.EXPECT().GetLaunchByID("LNC001").Return(existing(), nil)
		launchRepo.EXPECT().UpdateLaunch(gomock.Any()).DoAndReturn(func(launch *domain.Launch) error {
			// Nova meta de 1000: 700 via tráfego, ceil(1000/40) = 25/dia
			assert.InDelta(t, 50000.0/700, launch.MaxCPA, 1e-9)
			assert.Equal(t, 25, launch.DailyPacing)
			return nil
		})

		newTarget := 1000
		updated, err := service.UpdateLaunch(&domain.UpdateLaunchRequest{
			ID:            "LNC001",
			TargetTickets: &newTarget,
		})

		assert.NoError(t, err)
		assert.Equal(t, 1000, updated.TargetTickets)
	})

	t.Run("Status inválido - retorna erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		service := NewService(launchRepo)

		launchRepo.EXPECT().GetLaunchByID("LNC001").Return(existing(), nil)

		status := "pausado"
		_, err := service.UpdateLaunch(&domain.UpdateLaunchRequest{ID: "LNC001", Status: &status})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Lançamento inexistente - retorna erro de não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		service := NewService(launchRepo)

		launchRepo.EXPECT().GetLaunchByID("LNC404").Return(nil, nil)

		_, err := service.UpdateLaunch(&domain.UpdateLaunchRequest{ID: "LNC404"})

		assert.ErrorIs(t, err, ErrLaunchNotFound)
	})
}

func TestService_GetMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	launchRepo := mocks.NewMockLaunchRepository(ctrl)
	service := NewService(launchRepo)

	launchRepo.EXPECT().GetLaunchByID("LNC001").Return(&domain.Launch{
		ID:            "LNC001",
		TargetTickets: 500,
		Budget:        50000,
		SaleDays:      40,
		TicketBatches: []domain.TicketBatch{
			{Name: "Lote 1", Order: 1, Price: 100, Quantity: 250},
			{Name: "Lote 2", Order: 2, Price: 200, Quantity: 250},
		},
		Products: []domain.Product{
			{Type: domain.ProductTypeMain, Name: "Mentoria", Price: 4997},
		},
		OrderBumps: []domain.OrderBump{
			{Name: "gravacoes", Price: 197},
		},
	}, nil)

	metrics, err := service.GetMetrics("LNC001")

	assert.NoError(t, err)
	assert.Equal(t, "LNC001", metrics.LaunchID)
	assert.InDelta(t, 150.0, metrics.AvgTicket, 1e-9)
	assert.InDelta(t, 50000.0/350, metrics.MaxCPA.MaxCPA, 1e-9)
	assert.Len(t, metrics.Batches, 2)
	assert.Len(t, metrics.Projection, 3)
	assert.Equal(t, "Realista", metrics.Projection[1].Label)

	// Projeção usa o preço real do produto principal: 325 presentes,
	// 81 vendas a 4997
	assert.InDelta(t, 81*4997.0, metrics.Projection[1].ProductRevenue, 1e-9)
}
