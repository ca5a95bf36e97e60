// Package communicating gera e administra o cronograma de comunicação de
// 44 dias de um lançamento pago
package communicating

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/launch-planner-api/internal/domain"
)

// CalendarDays é a janela fixa do cronograma: 40 dias de venda de ingressos,
// o dia rotulado como evento (41) e 3 dias de carrinho aberto. Como o dia 1
// começa 43 dias antes da data do evento, é o dia 44 que coincide com ela
const CalendarDays = 44

// Fases do cronograma, particionadas por faixas de dias
const (
	PhasePreLaunch   = "Pré-Lançamento" // dias 1-10
	PhaseActiveSales = "Vendas Ativas"  // dias 11-35
	PhasePreEvent    = "Pré-Evento"     // dias 36-40
	PhaseEvent       = "Evento"         // dia 41
	PhasePostEvent   = "Pós-Evento"     // dias 42-44
)

// Dias de virada de lote dentro da fase de vendas ativas
var batchTurnDays = []int{11, 14, 18, 22, 26, 30, 34}

// dayMatcher decide se uma regra do calendário se aplica a um dia
type dayMatcher func(day int) bool

func onDays(days ...int) dayMatcher {
	return func(day int) bool {
		for _, d := range days {
			if day == d {
				return true
			}
		}
		return false
	}
}

func inRange(from, to int) dayMatcher {
	return func(day int) bool {
		return day >= from && day <= to
	}
}

// everyNth casa com múltiplos de n dentro da faixa, pulando exceções
func everyNth(from, to, n int, except ...int) dayMatcher {
	return func(day int) bool {
		if day < from || day > to || day%n != 0 {
			return false
		}
		for _, e := range except {
			if day == e {
				return false
			}
		}
		return true
	}
}

// calendarRule associa um conjunto de dias a ações fixas. Títulos podem
// conter %d, substituído pelo número do dia na geração
type calendarRule struct {
	match   dayMatcher
	actions []domain.CommunicationAction
}

// calendarRules é a tabela completa do cronograma. A ordem das regras define
// a ordem das ações dentro de cada dia, e é estável entre execuções
var calendarRules = []calendarRule{
	// ── Pré-Lançamento (dias 1-10) ──
	{onDays(1), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "lancamento", Title: "Email de abertura de vendas", Description: "Anunciar abertura do primeiro lote", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelInstagram, Type: "post", Title: "Post de abertura", Description: "Anúncio oficial do evento no feed", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelAds, Type: "campanha", Title: "Ativar campanhas de tráfego", Description: "Ligar todas as campanhas configuradas", Priority: domain.PriorityHigh},
	}},
	{inRange(1, 3), []domain.CommunicationAction{
		{Channel: domain.ChannelStories, Type: "conteudo", Title: "Stories de bastidores", Description: "Mostrar preparação do evento", Priority: domain.PriorityMedium},
	}},
	{onDays(3), []domain.CommunicationAction{
		{Channel: domain.ChannelStories, Type: "social_proof", Title: "Stories prova social primeiras vendas", Description: "Compartilhar primeiros depoimentos e vendas", Priority: domain.PriorityMedium},
		{Channel: domain.ChannelWhatsApp, Type: "base", Title: "WhatsApp para base existente", Description: "Mensagem para lista existente sobre o evento", Priority: domain.PriorityMedium},
	}},
	{onDays(5), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "conteudo", Title: "Email de conteúdo + valor", Description: "Valor + sutileza sobre o evento", Priority: domain.PriorityMedium},
		{Channel: domain.ChannelInstagram, Type: "post", Title: "Post de conteúdo educativo", Description: "Conteúdo de valor relacionado ao evento", Priority: domain.PriorityMedium},
	}},
	{onDays(7), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "prova_social", Title: "Email prova social + depoimentos", Description: "Email com resultados e depoimentos de alunos", Priority: domain.PriorityMedium},
		{Channel: domain.ChannelStories, Type: "conteudo", Title: "Stories bastidores e preparação", Description: "Bastidores da preparação do evento", Priority: domain.PriorityMedium},
		{Channel: domain.ChannelAds, Type: "otimizacao", Title: "Otimizar campanhas (1a semana)", Description: "Pausar criativos ruins, escalar os que convertem", Priority: domain.PriorityMedium},
	}},

	// ── Vendas Ativas (dias 11-35) ──
	{onDays(batchTurnDays...), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "virada_lote", Title: "Email virada de lote (Dia %d)", Description: "Aviso de que lote atual está encerrando", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelWhatsApp, Type: "urgencia", Title: "WhatsApp últimas vagas do lote", Description: "Últimas vagas do lote atual", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelStories, Type: "urgencia", Title: "Stories countdown virada de lote", Description: "Contagem regressiva para virada", Priority: domain.PriorityHigh},
	}},
	{everyNth(11, 35, 3, 14, 22, 30), []domain.CommunicationAction{
		{Channel: domain.ChannelInstagram, Type: "conteudo", Title: "Post de valor/desejo", Description: "Conteúdo que gera desejo pelo evento", Priority: domain.PriorityMedium},
	}},
	{everyNth(11, 35, 4), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "conteudo", Title: "Email conteúdo/prova social", Description: "Alternância entre valor e prova social", Priority: domain.PriorityMedium},
	}},
	{everyNth(11, 35, 5), []domain.CommunicationAction{
		{Channel: domain.ChannelWhatsApp, Type: "conteudo", Title: "WhatsApp conteúdo para base", Description: "Conteúdo relevante para quem está no grupo", Priority: domain.PriorityMedium},
	}},
	{everyNth(11, 35, 2), []domain.CommunicationAction{
		{Channel: domain.ChannelStories, Type: "social_proof", Title: "Stories prova social/bastidores", Description: "Depoimentos, números de vendas, bastidores", Priority: domain.PriorityMedium},
	}},
	{onDays(14, 21, 28, 35), []domain.CommunicationAction{
		{Channel: domain.ChannelAds, Type: "otimizacao", Title: "Otimizar campanhas (semanal)", Description: "Pausar criativos ruins, escalar bons", Priority: domain.PriorityMedium},
	}},
	{onDays(15, 25), []domain.CommunicationAction{
		{Channel: domain.ChannelInstagram, Type: "reels", Title: "Reels depoimento/resultado", Description: "Reels curto com prova social", Priority: domain.PriorityMedium},
	}},

	// ── Pré-Evento (dias 36-40) ──
	{onDays(36), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "lembrete", Title: "Email lembrete D-7", Description: "Lembrete do evento + o que preparar", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelWhatsApp, Type: "lembrete", Title: "WhatsApp lembrete D-7 + cronograma", Description: "Lembrete no grupo com cronograma", Priority: domain.PriorityHigh},
	}},
	{onDays(38), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "lembrete", Title: "Email lembrete D-3", Description: "Lembrete com detalhes finais", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelStories, Type: "countdown", Title: "Stories contagem regressiva", Description: "Countdown para o evento", Priority: domain.PriorityHigh},
	}},
	{onDays(39), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "lembrete", Title: "Email D-1: Amanhã é o dia!", Description: "Checklist + links + horário", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelWhatsApp, Type: "lembrete", Title: "WhatsApp D-1 com link e horário", Description: "Lembrete com link e horário", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelStories, Type: "countdown", Title: "Stories countdown final", Description: "Contagem regressiva para o evento", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelInstagram, Type: "post", Title: "Post \"Amanhã\" no feed", Description: "Post de expectativa no feed", Priority: domain.PriorityHigh},
	}},
	{onDays(40), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "evento", Title: "Email manhã do evento + link", Description: "Link + motivação + horário", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelWhatsApp, Type: "evento", Title: "WhatsApp 30min antes com link", Description: "Link e lembrete final", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelStories, Type: "live", Title: "Stories ao vivo do evento", Description: "Bastidores do evento", Priority: domain.PriorityHigh},
	}},
	{inRange(36, 40), []domain.CommunicationAction{
		{Channel: domain.ChannelStories, Type: "conteudo", Title: "Stories antecipação", Description: "Gerar expectativa para o evento", Priority: domain.PriorityMedium},
	}},

	// ── Evento (dia 41) e Pós-Evento (dias 42-44) ──
	{onDays(41), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "pos_evento", Title: "Email carrinho aberto — high ticket", Description: "Oferta do high ticket", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelWhatsApp, Type: "pos_evento", Title: "WhatsApp oferta + cashback", Description: "Oferta com cashback para quem comprou gravações", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelStories, Type: "oferta", Title: "Stories oferta high ticket", Description: "Stories com oferta e depoimentos", Priority: domain.PriorityHigh},
	}},
	{onDays(42), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "follow_up", Title: "Email follow-up D+1 — prova social", Description: "Follow-up com prova social", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelWhatsApp, Type: "follow_up", Title: "WhatsApp follow-up", Description: "Acompanhamento dos interessados", Priority: domain.PriorityHigh},
	}},
	{onDays(43), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "urgencia", Title: "Email últimas 24h", Description: "Últimas 24h da oferta", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelWhatsApp, Type: "urgencia", Title: "WhatsApp última chance", Description: "Carrinho encerrando", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelStories, Type: "urgencia", Title: "Stories urgência encerramento", Description: "Stories de urgência final", Priority: domain.PriorityHigh},
	}},
	{onDays(44), []domain.CommunicationAction{
		{Channel: domain.ChannelEmail, Type: "encerramento", Title: "Email encerramento final", Description: "Últimas 2h + obrigado", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelWhatsApp, Type: "encerramento", Title: "WhatsApp encerramento", Description: "Última mensagem de encerramento", Priority: domain.PriorityHigh},
		{Channel: domain.ChannelInstagram, Type: "post", Title: "Post encerramento/agradecimento", Description: "Post final de agradecimento", Priority: domain.PriorityHigh},
	}},
}

// phaseForDay devolve a fase e o rótulo de um dia do cronograma
func phaseForDay(day int) (phase, label string) {
	switch {
	case day <= 10:
		return PhasePreLaunch, fmt.Sprintf("Preparação D-%d", CalendarDays-day)
	case day <= 35:
		return PhaseActiveSales, fmt.Sprintf("Vendas D-%d", CalendarDays-day)
	case day <= 40:
		return PhasePreEvent, fmt.Sprintf("Pré-Evento D-%d", CalendarDays-day)
	case day == 41:
		return PhaseEvent, "Dia do Evento"
	default:
		return PhasePostEvent, fmt.Sprintf("Pós-Evento D+%d", day-41)
	}
}

// ActionsForDay avalia a tabela de regras para um dia do cronograma
func ActionsForDay(day int) []domain.CommunicationAction {
	var actions []domain.CommunicationAction
	for _, rule := range calendarRules {
		if !rule.match(day) {
			continue
		}
		for _, a := range rule.actions {
			if strings.Contains(a.Title, "%d") {
				a.Title = fmt.Sprintf(a.Title, day)
			}
			actions = append(actions, a)
		}
	}
	return actions
}

// GenerateCalendar enumera o cronograma completo a partir da data do evento.
// O dia 1 cai 43 dias antes do evento, então o rótulo "Dia do Evento" do dia
// 41 cai 3 dias antes da data informada e o dia 44 coincide com ela; o
// original numera a janela assim e o comportamento foi preservado. A saída
// é esparsa: dias sem ação não aparecem. Para a mesma data o resultado é
// sempre idêntico, inclusive na ordem — a inicialização da persistência
// depende disso
func GenerateCalendar(eventDate time.Time) []domain.CommunicationDay {
	startDate := eventDate.AddDate(0, 0, -43)

	days := make([]domain.CommunicationDay, 0, CalendarDays)
	for i := 0; i < CalendarDays; i++ {
		day := i + 1

		actions := ActionsForDay(day)
		if len(actions) == 0 {
			continue
		}

		phase, label := phaseForDay(day)
		days = append(days, domain.CommunicationDay{
			Day:     day,
			Date:    startDate.AddDate(0, 0, i),
			Label:   label,
			Phase:   phase,
			Actions: actions,
		})
	}

	return days
}

// BatchTurnDays devolve os dias de virada de lote do cronograma
func BatchTurnDays() []int {
	out := make([]int, len(batchTurnDays))
	copy(out, batchTurnDays)
	return out
}
