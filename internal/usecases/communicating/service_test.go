package communicating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository/mocks"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_InitializeCommunications(t *testing.T) {
	eventDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	launch := &domain.Launch{ID: "LNC001", Name: "Lançamento Teste", EventDate: eventDate}

	expectedTotal := 0
	for _, day := range GenerateCalendar(eventDate) {
		expectedTotal += len(day.Actions)
	}

	tests := []struct {
		name     string
		setup    func(launchRepo *mocks.MockLaunchRepository, commRepo *mocks.MockCommunicationRepository)
		validate func(t *testing.T, result *InitializeResult, err error)
	}{
		{
			name: "Lançamento sem comunicações - cria todas as linhas do cronograma",
			setup: func(launchRepo *mocks.MockLaunchRepository, commRepo *mocks.MockCommunicationRepository) {
				launchRepo.EXPECT().GetLaunchByID("LNC001").Return(launch, nil)
				commRepo.EXPECT().CountByLaunchID("LNC001").Return(0, nil)
				commRepo.EXPECT().CreateMany(gomock.Any()).DoAndReturn(func(comms []*domain.Communication) error {
					assert.Len(t, comms, expectedTotal)
					for _, comm := range comms {
						assert.Equal(t, "LNC001", comm.LaunchID)
						assert.Equal(t, domain.CommunicationStatusPending, comm.Status)
						assert.NotEmpty(t, comm.ID)
					}
					return nil
				})
			},
			validate: func(t *testing.T, result *InitializeResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, expectedTotal, result.Created)
			},
		},
		{
			name: "Cronograma já inicializado - não cria nada",
			setup: func(launchRepo *mocks.MockLaunchRepository, commRepo *mocks.MockCommunicationRepository) {
				launchRepo.EXPECT().GetLaunchByID("LNC001").Return(launch, nil)
				commRepo.EXPECT().CountByLaunchID("LNC001").Return(87, nil)
			},
			validate: func(t *testing.T, result *InitializeResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, result.Created)
				assert.Equal(t, "Cronograma já inicializado", result.Message)
			},
		},
		{
			name: "Lançamento inexistente - retorna erro de não encontrado",
			setup: func(launchRepo *mocks.MockLaunchRepository, commRepo *mocks.MockCommunicationRepository) {
				launchRepo.EXPECT().GetLaunchByID("LNC001").Return(nil, nil)
			},
			validate: func(t *testing.T, result *InitializeResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrLaunchNotFound)
			},
		},
		{
			name: "Falha na persistência - propaga erro de banco",
			setup: func(launchRepo *mocks.MockLaunchRepository, commRepo *mocks.MockCommunicationRepository) {
				launchRepo.EXPECT().GetLaunchByID("LNC001").Return(launch, nil)
				commRepo.EXPECT().CountByLaunchID("LNC001").Return(0, nil)
				commRepo.EXPECT().CreateMany(gomock.Any()).Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, result *InitializeResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			launchRepo := mocks.NewMockLaunchRepository(ctrl)
			commRepo := mocks.NewMockCommunicationRepository(ctrl)
			contentRepo := mocks.NewMockContentRepository(ctrl)

			service := NewService(launchRepo, commRepo, contentRepo)

			tt.setup(launchRepo, commRepo)

			result, err := service.InitializeCommunications("LNC001")
			tt.validate(t, result, err)
		})
	}
}

func TestService_UpdateCommunication(t *testing.T) {
	statusApproved := domain.CommunicationStatusApproved
	statusInvalid := "arquivado"
	contentID := "CNT001"
	previousContentID := "CNT000"

	comm := func() *domain.Communication {
		return &domain.Communication{
			ID:       "COM001",
			LaunchID: "LNC001",
			Day:      41,
			Status:   domain.CommunicationStatusPending,
		}
	}

	t.Run("Aprova uma comunicação pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		commRepo := mocks.NewMockCommunicationRepository(ctrl)
		contentRepo := mocks.NewMockContentRepository(ctrl)
		service := NewService(launchRepo, commRepo, contentRepo)

		updated := comm()
		updated.Status = domain.CommunicationStatusApproved

		commRepo.EXPECT().GetByID("COM001").Return(comm(), nil)
		commRepo.EXPECT().UpdateStatus("COM001", domain.CommunicationStatusApproved).Return(nil)
		commRepo.EXPECT().GetByID("COM001").Return(updated, nil)

		result, err := service.UpdateCommunication(&domain.UpdateCommunicationRequest{
			CommunicationID: "COM001",
			Status:          &statusApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.CommunicationStatusApproved, result.Status)
	})

	t.Run("Status inválido - retorna erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		commRepo := mocks.NewMockCommunicationRepository(ctrl)
		contentRepo := mocks.NewMockContentRepository(ctrl)
		service := NewService(launchRepo, commRepo, contentRepo)

		commRepo.EXPECT().GetByID("COM001").Return(comm(), nil)

		_, err := service.UpdateCommunication(&domain.UpdateCommunicationRequest{
			CommunicationID: "COM001",
			Status:          &statusInvalid,
		})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Vincula conteúdo aprovado desaprovando o anterior", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		commRepo := mocks.NewMockCommunicationRepository(ctrl)
		contentRepo := mocks.NewMockContentRepository(ctrl)
		service := NewService(launchRepo, commRepo, contentRepo)

		linked := comm()
		linked.ApprovedContentID = &previousContentID

		content := &domain.GeneratedContent{
			ID:       contentID,
			LaunchID: "LNC001",
			Content:  "Copy aprovada para o email de carrinho aberto",
		}

		updated := comm()
		updated.ApprovedContentID = &contentID
		updated.Content = content.Content

		commRepo.EXPECT().GetByID("COM001").Return(linked, nil)
		contentRepo.EXPECT().GetByID(contentID).Return(content, nil)
		contentRepo.EXPECT().SetApproval(previousContentID, false).Return(nil)
		contentRepo.EXPECT().SetApproval(contentID, true).Return(nil)
		commRepo.EXPECT().SetApprovedContent("COM001", &contentID, content.Content).Return(nil)
		commRepo.EXPECT().GetByID("COM001").Return(updated, nil)

		result, err := service.UpdateCommunication(&domain.UpdateCommunicationRequest{
			CommunicationID:   "COM001",
			ApprovedContentID: &contentID,
		})

		assert.NoError(t, err)
		assert.Equal(t, &contentID, result.ApprovedContentID)
		assert.Equal(t, content.Content, result.Content)
	})

	t.Run("Conteúdo inexistente - retorna erro de não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		launchRepo := mocks.NewMockLaunchRepository(ctrl)
		commRepo := mocks.NewMockCommunicationRepository(ctrl)
		contentRepo := mocks.NewMockContentRepository(ctrl)
		service := NewService(launchRepo, commRepo, contentRepo)

		commRepo.EXPECT().GetByID("COM001").Return(comm(), nil)
		contentRepo.EXPECT().GetByID(contentID).Return(nil, nil)

		_, err := service.UpdateCommunication(&domain.UpdateCommunicationRequest{
			CommunicationID:   "COM001",
			ApprovedContentID: &contentID,
		})

		assert.ErrorIs(t, err, ErrContentNotFound)
	})
}
