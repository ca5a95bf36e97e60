package communicating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/internal/domain"
)

func TestGenerateCalendar(t *testing.T) {
	eventDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	startDate := eventDate.AddDate(0, 0, -43)

	calendar := GenerateCalendar(eventDate)

	t.Run("Todos os dias gerados estão no intervalo 1-44 e têm ações", func(t *testing.T) {
		assert.NotEmpty(t, calendar)

		lastDay := 0
		for _, day := range calendar {
			assert.GreaterOrEqual(t, day.Day, 1)
			assert.LessOrEqual(t, day.Day, CalendarDays)
			assert.NotEmpty(t, day.Actions, "dia %d não deveria aparecer sem ações", day.Day)
			assert.Greater(t, day.Day, lastDay, "dias devem ser estritamente crescentes")
			lastDay = day.Day
		}
	})

	t.Run("Datas derivam do dia 1 = data do evento - 43 dias", func(t *testing.T) {
		for _, day := range calendar {
			expected := startDate.AddDate(0, 0, day.Day-1)
			assert.Equal(t, expected, day.Date, "data errada para o dia %d", day.Day)
		}
	})

	t.Run("Resultado esparso: dias sem regra não aparecem", func(t *testing.T) {
		generated := make(map[int]bool)
		for _, day := range calendar {
			generated[day.Day] = true
		}

		// Dia 9 não casa com nenhuma regra do pré-lançamento
		assert.False(t, generated[9])
		assert.True(t, generated[1])
		assert.True(t, generated[41])
	})

	t.Run("Duas gerações com a mesma data são idênticas", func(t *testing.T) {
		again := GenerateCalendar(eventDate)
		assert.Equal(t, calendar, again)
	})
}

func TestGenerateCalendar_DiaDoEvento(t *testing.T) {
	eventDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	calendar := GenerateCalendar(eventDate)

	var eventDay *domain.CommunicationDay
	for i := range calendar {
		if calendar[i].Day == 41 {
			eventDay = &calendar[i]
			break
		}
	}

	assert.NotNil(t, eventDay)
	assert.Equal(t, PhaseEvent, eventDay.Phase)
	assert.Len(t, eventDay.Actions, 3)

	// Abertura de carrinho do high ticket + oferta com cashback
	assert.Equal(t, domain.ChannelEmail, eventDay.Actions[0].Channel)
	assert.Equal(t, "pos_evento", eventDay.Actions[0].Type)
	assert.Equal(t, domain.ChannelWhatsApp, eventDay.Actions[1].Channel)
	assert.Contains(t, eventDay.Actions[1].Title, "cashback")
	assert.Equal(t, domain.ChannelStories, eventDay.Actions[2].Channel)
	assert.Equal(t, "oferta", eventDay.Actions[2].Type)

	for _, action := range eventDay.Actions {
		assert.Equal(t, domain.PriorityHigh, action.Priority)
	}
}

func TestActionsForDay_ViradaDeLote(t *testing.T) {
	for _, day := range BatchTurnDays() {
		actions := ActionsForDay(day)

		var email, whatsapp, stories *domain.CommunicationAction
		for i := range actions {
			switch {
			case actions[i].Type == "virada_lote":
				email = &actions[i]
			case actions[i].Channel == domain.ChannelWhatsApp && actions[i].Type == "urgencia":
				whatsapp = &actions[i]
			case actions[i].Channel == domain.ChannelStories && actions[i].Type == "urgencia":
				stories = &actions[i]
			}
		}

		assert.NotNil(t, email, "dia %d deveria ter email de virada de lote", day)
		assert.NotNil(t, whatsapp, "dia %d deveria ter whatsapp de urgência", day)
		assert.NotNil(t, stories, "dia %d deveria ter stories de urgência", day)

		assert.Contains(t, email.Title, "(Dia ")
		assert.Equal(t, domain.PriorityHigh, email.Priority)
		assert.Equal(t, domain.PriorityHigh, whatsapp.Priority)
		assert.Equal(t, domain.PriorityHigh, stories.Priority)
	}
}

func TestActionsForDay_VendasAtivas(t *testing.T) {
	hasAction := func(day int, channel domain.Channel, actionType string) bool {
		for _, a := range ActionsForDay(day) {
			if a.Channel == channel && a.Type == actionType {
				return true
			}
		}
		return false
	}

	tests := []struct {
		name       string
		day        int
		channel    domain.Channel
		actionType string
		want       bool
	}{
		{"Dia 12 múltiplo de 3 tem post de valor", 12, domain.ChannelInstagram, "conteudo", true},
		{"Dia 14 é exceção do ciclo de 3 (virada de lote)", 14, domain.ChannelInstagram, "conteudo", false},
		{"Dia 30 é exceção do ciclo de 3 (virada de lote)", 30, domain.ChannelInstagram, "conteudo", false},
		{"Dia 16 múltiplo de 4 tem email de conteúdo", 16, domain.ChannelEmail, "conteudo", true},
		{"Dia 15 múltiplo de 5 tem whatsapp de conteúdo", 15, domain.ChannelWhatsApp, "conteudo", true},
		{"Dia 12 par tem stories de prova social", 12, domain.ChannelStories, "social_proof", true},
		{"Dia 13 ímpar não tem stories de prova social", 13, domain.ChannelStories, "social_proof", false},
		{"Dia 21 tem otimização semanal de campanhas", 21, domain.ChannelAds, "otimizacao", true},
		{"Dia 15 tem reels de depoimento", 15, domain.ChannelInstagram, "reels", true},
		{"Dia 25 tem reels de depoimento", 25, domain.ChannelInstagram, "reels", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasAction(tt.day, tt.channel, tt.actionType))
		})
	}
}

func TestPhaseForDay(t *testing.T) {
	tests := []struct {
		day   int
		phase string
	}{
		{1, PhasePreLaunch},
		{10, PhasePreLaunch},
		{11, PhaseActiveSales},
		{35, PhaseActiveSales},
		{36, PhasePreEvent},
		{40, PhasePreEvent},
		{41, PhaseEvent},
		{42, PhasePostEvent},
		{44, PhasePostEvent},
	}

	for _, tt := range tests {
		phase, label := phaseForDay(tt.day)
		assert.Equal(t, tt.phase, phase, "fase errada para o dia %d", tt.day)
		assert.NotEmpty(t, label)
	}
}
