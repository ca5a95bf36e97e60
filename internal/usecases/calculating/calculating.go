// Package calculating implementa as fórmulas financeiras do lançamento pago.
// Todas as funções são puras e totais: divisor zero resulta em zero, nunca
// em erro
package calculating

import (
	"fmt"
	"math"

	"github.com/vfg2006/launch-planner-api/internal/domain"
)

// Constantes do modelo. São heurísticas do playbook, não parâmetros
// configuráveis
const (
	// ShowUpRate é o comparecimento esperado ao evento
	ShowUpRate = 0.65

	// Multiplicadores dos três cenários de projeção
	PessimisticMultiplier = 0.7
	RealisticMultiplier   = 1.0
	OptimisticMultiplier  = 1.3

	// CashbackConversionUplift é o ganho de conversão assumido para quem
	// comprou as gravações com cashback
	CashbackConversionUplift = 1.35

	// BatchPriceStep é o acréscimo de preço por lote (15% sobre o preço base)
	BatchPriceStep = 0.15

	// BusinessDayRatio aproxima dias úteis sobre dias corridos
	BusinessDayRatio = 5.0 / 7.0

	// DefaultBatchCount é a quantidade padrão de lotes da escada de preços
	DefaultBatchCount = 7
)

// Valores padrão das ofertas quando o chamador não informa
const (
	DefaultOrderBumpRate      = 0.25
	DefaultOrderBumpPrice     = 197
	DefaultProductConversion  = 0.25
	DefaultProductPrice       = 997
	DefaultDownsellConversion = 0.10
	DefaultDownsellPrice      = 497
	DefaultCashbackTickets    = 1000
	DefaultBaseConversion     = 0.25
)

// CalculateMaxCPA calcula o teto de custo por aquisição da verba de vendas.
// Com zero ingressos de tráfego o teto é zero: ainda não há sinal, não é erro
func CalculateMaxCPA(salesBudget float64, trafficTickets int) domain.CpaCalculation {
	maxCPA := 0.0
	if trafficTickets > 0 {
		maxCPA = salesBudget / float64(trafficTickets)
	}

	return domain.CpaCalculation{
		SalesBudget:    salesBudget,
		TrafficTickets: trafficTickets,
		MaxCPA:         maxCPA,
	}
}

// CalculatePacing calcula o ritmo diário de vendas para bater a meta.
// Dias úteis = ceil(dias corridos × 5/7); não consulta o calendário real,
// então janelas curtas podem divergir da contagem exata de dias de semana
func CalculatePacing(targetTickets, totalDays int) domain.PacingCalculation {
	businessDays := int(math.Ceil(float64(totalDays) * BusinessDayRatio))

	pacingTotal := 0
	if totalDays > 0 {
		pacingTotal = int(math.Ceil(float64(targetTickets) / float64(totalDays)))
	}

	pacingBusiness := 0
	if businessDays > 0 {
		pacingBusiness = int(math.Ceil(float64(targetTickets) / float64(businessDays)))
	}

	return domain.PacingCalculation{
		TargetTickets:  targetTickets,
		TotalDays:      totalDays,
		BusinessDays:   businessDays,
		PacingTotal:    pacingTotal,
		PacingBusiness: pacingBusiness,
	}
}

// CalculateAvgTicket calcula o ticket médio ponderado pela quantidade dos lotes
func CalculateAvgTicket(batches []domain.BatchConfig) float64 {
	var totalRevenue float64
	var totalQuantity int

	for _, b := range batches {
		totalRevenue += b.Price * float64(b.Quantity)
		totalQuantity += b.Quantity
	}

	if totalQuantity == 0 {
		return 0
	}

	return totalRevenue / float64(totalQuantity)
}

// CalculateBatches desdobra cada lote em receita, percentual do total e
// acumulado, preservando a ordem informada
func CalculateBatches(batches []domain.BatchConfig) []domain.BatchCalculation {
	var totalRevenue float64
	for _, b := range batches {
		totalRevenue += b.Price * float64(b.Quantity)
	}

	result := make([]domain.BatchCalculation, 0, len(batches))

	var cumulative float64
	for _, b := range batches {
		revenue := b.Price * float64(b.Quantity)
		cumulative += revenue

		percent := 0.0
		if totalRevenue > 0 {
			percent = revenue / totalRevenue * 100
		}

		result = append(result, domain.BatchCalculation{
			Name:           b.Name,
			Order:          b.Order,
			Price:          b.Price,
			Quantity:       b.Quantity,
			Revenue:        revenue,
			PercentOfTotal: percent,
			Cumulative:     cumulative,
		})
	}

	return result
}

// GenerateBatches sintetiza uma escada de lotes: preço sobe 15% do preço base
// a cada lote, o primeiro lote leva metade da quantidade (escassez na
// abertura) e o último 1.5× (volume no preço mais alto). É um padrão inicial;
// o chamador pode ajustar lotes individualmente depois
func GenerateBatches(basePrice float64, totalTickets, batchCount int) []domain.BatchConfig {
	if batchCount <= 0 {
		batchCount = DefaultBatchCount
	}

	increment := basePrice * BatchPriceStep
	ticketsPerBatch := math.Ceil(float64(totalTickets) / float64(batchCount))

	batches := make([]domain.BatchConfig, 0, batchCount)
	for i := 0; i < batchCount; i++ {
		qty := ticketsPerBatch
		switch i {
		case 0:
			qty = math.Ceil(ticketsPerBatch * 0.5)
		case batchCount - 1:
			qty = math.Ceil(ticketsPerBatch * 1.5)
		}

		batches = append(batches, domain.BatchConfig{
			Name:     fmt.Sprintf("Lote %d", i+1),
			Order:    i + 1,
			Price:    math.Round(basePrice + increment*float64(i)),
			Quantity: int(qty),
		})
	}

	return batches
}

// ProjectionInput são os parâmetros da projeção de faturamento
type ProjectionInput struct {
	TargetTickets      int
	AvgTicket          float64
	Budget             float64
	OrderBumpRate      float64
	AvgOrderBumpPrice  float64
	ProductConversion  float64
	ProductPrice       float64
	DownsellConversion float64
	DownsellPrice      float64
}

// CalculateProjection projeta o faturamento nos três cenários fixos.
// O downsell é ofertado apenas a quem compareceu e não comprou o produto
// principal
func CalculateProjection(in ProjectionInput) []domain.ProjectionScenario {
	scenarios := []struct {
		label      string
		multiplier float64
	}{
		{"Pessimista", PessimisticMultiplier},
		{"Realista", RealisticMultiplier},
		{"Otimista", OptimisticMultiplier},
	}

	result := make([]domain.ProjectionScenario, 0, len(scenarios))
	for _, sc := range scenarios {
		tickets := math.Round(float64(in.TargetTickets) * sc.multiplier)
		ticketRevenue := tickets * in.AvgTicket
		orderBumpRevenue := math.Round(tickets*in.OrderBumpRate) * in.AvgOrderBumpPrice

		eventAttendees := math.Round(tickets * ShowUpRate)
		productRevenue := math.Round(eventAttendees*in.ProductConversion) * in.ProductPrice
		downsellRevenue := math.Round(eventAttendees*(1-in.ProductConversion)*in.DownsellConversion) * in.DownsellPrice

		totalRevenue := ticketRevenue + orderBumpRevenue + productRevenue + downsellRevenue

		roas := 0.0
		if in.Budget > 0 {
			roas = totalRevenue / in.Budget
		}

		result = append(result, domain.ProjectionScenario{
			Label:            sc.label,
			Multiplier:       sc.multiplier,
			Tickets:          int(tickets),
			TicketRevenue:    ticketRevenue,
			OrderBumpRevenue: orderBumpRevenue,
			ProductRevenue:   productRevenue,
			DownsellRevenue:  downsellRevenue,
			TotalRevenue:     totalRevenue,
			Roas:             roas,
			Profit:           totalRevenue - in.Budget,
		})
	}

	return result
}

// CalculateCashback simula a venda do high ticket com e sem o cashback das
// gravações. No cenário com cashback a receita soma o produto com desconto
// e a venda das gravações para todos os presentes
func CalculateCashback(recordingPrice, productPrice float64, tickets int, baseConversion float64) domain.CashbackCalculation {
	cashbackConversion := baseConversion * CashbackConversionUplift
	attendees := math.Round(float64(tickets) * ShowUpRate)

	salesWith := math.Round(attendees * cashbackConversion)
	salesWithout := math.Round(attendees * baseConversion)

	uplift := 0.0
	if baseConversion > 0 {
		uplift = (cashbackConversion - baseConversion) / baseConversion * 100
	}

	return domain.CashbackCalculation{
		RecordingPrice: recordingPrice,
		ProductPrice:   productPrice,
		WithCashback: domain.CashbackScenario{
			EffectivePrice:      productPrice - recordingPrice,
			EstimatedConversion: cashbackConversion * 100,
			EstimatedSales:      int(salesWith),
			Revenue:             salesWith*(productPrice-recordingPrice) + attendees*recordingPrice,
		},
		WithoutCashback: domain.CashbackScenario{
			EffectivePrice:      productPrice,
			EstimatedConversion: baseConversion * 100,
			EstimatedSales:      int(salesWithout),
			Revenue:             salesWithout * productPrice,
		},
		Uplift: uplift,
	}
}

// CalculateRoas agrega as quatro fontes de receita contra o investimento
func CalculateRoas(investment, ticketRevenue, orderBumpRevenue, productRevenue, downsellRevenue float64) domain.RoasCalculation {
	totalRevenue := ticketRevenue + orderBumpRevenue + productRevenue + downsellRevenue
	profit := totalRevenue - investment

	roas := 0.0
	if investment > 0 {
		roas = totalRevenue / investment
	}

	margin := 0.0
	if totalRevenue > 0 {
		margin = profit / totalRevenue * 100
	}

	return domain.RoasCalculation{
		Investment:       investment,
		TicketRevenue:    ticketRevenue,
		OrderBumpRevenue: orderBumpRevenue,
		ProductRevenue:   productRevenue,
		DownsellRevenue:  downsellRevenue,
		TotalRevenue:     totalRevenue,
		Roas:             roas,
		Profit:           profit,
		Margin:           margin,
	}
}
