package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/infrastructure/repository/mocks"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/communicating"
	commmocks "github.com/vfg2006/launch-planner-api/internal/usecases/communicating/mocks"
	"go.uber.org/mock/gomock"
)

func TestCalendarDayFor(t *testing.T) {
	eventDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		reference time.Time
		expected  int
	}{
		{"Primeiro dia da janela", eventDate.AddDate(0, 0, -43), 1},
		{"Véspera da janela fica fora", eventDate.AddDate(0, 0, -44), 0},
		{"Dia do evento é o dia 41", eventDate.AddDate(0, 0, -3), 41},
		{"Último dia de carrinho", eventDate, 44},
		{"Depois do fim fica fora", eventDate.AddDate(0, 0, 1), 45},
		{"Hora do dia não muda o cálculo", eventDate.Add(-3*24*time.Hour + 22*time.Hour), 41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalendarDayFor(eventDate, tt.reference))
		})
	}
}

func TestCommunicationReminderService_remindLaunch(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCommRepo := mocks.NewMockCommunicationRepository(ctrl)
	mockCommService := commmocks.NewMockCommunicationService(ctrl)

	service := &CommunicationReminderService{
		communicationRepo:    mockCommRepo,
		communicationService: mockCommService,
	}

	now := time.Date(2025, 6, 12, 8, 0, 0, 0, time.UTC)
	launch := &domain.Launch{
		ID:        "LNC001",
		Name:      "Imersão Identidade Visual",
		EventDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), // hoje é o dia 41
		Status:    domain.LaunchStatusActive,
	}

	t.Run("Conta só as ações pendentes do dia corrente", func(t *testing.T) {
		mockCommService.EXPECT().
			InitializeCommunications("LNC001").
			Return(&communicating.InitializeResult{LaunchID: "LNC001", Created: 0}, nil)

		mockCommRepo.EXPECT().ListByLaunchID("LNC001").Return([]*domain.Communication{
			{ID: "COM001", Day: 41, Status: domain.CommunicationStatusPending, Channel: domain.ChannelEmail},
			{ID: "COM002", Day: 41, Status: domain.CommunicationStatusApproved, Channel: domain.ChannelWhatsApp},
			{ID: "COM003", Day: 40, Status: domain.CommunicationStatusPending, Channel: domain.ChannelStories},
		}, nil)

		assert.Equal(t, 1, service.remindLaunch(launch, now))
	})

	t.Run("Fora da janela não consulta nada", func(t *testing.T) {
		early := &domain.Launch{
			ID:        "LNC002",
			EventDate: now.AddDate(0, 0, 60),
			Status:    domain.LaunchStatusActive,
		}

		assert.Equal(t, 0, service.remindLaunch(early, now))
	})
}
