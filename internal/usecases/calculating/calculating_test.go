package calculating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/internal/domain"
)

func TestCalculateMaxCPA(t *testing.T) {
	tests := []struct {
		name           string
		salesBudget    float64
		trafficTickets int
		expected       float64
	}{
		{"Verba dividida pelos ingressos de tráfego", 50000, 350, 50000.0 / 350},
		{"Zero ingressos de tráfego resulta em CPA zero", 50000, 0, 0},
		{"Verba zero resulta em CPA zero", 0, 350, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateMaxCPA(tt.salesBudget, tt.trafficTickets)

			assert.Equal(t, tt.salesBudget, result.SalesBudget)
			assert.Equal(t, tt.trafficTickets, result.TrafficTickets)
			assert.InDelta(t, tt.expected, result.MaxCPA, 1e-9)
		})
	}
}

func TestCalculatePacing(t *testing.T) {
	t.Run("500 ingressos em 15 dias", func(t *testing.T) {
		result := CalculatePacing(500, 15)

		assert.Equal(t, 11, result.BusinessDays)
		assert.Equal(t, 34, result.PacingTotal)
		assert.Equal(t, 46, result.PacingBusiness)
	})

	t.Run("Zero dias resulta em ritmo zero", func(t *testing.T) {
		result := CalculatePacing(500, 0)

		assert.Equal(t, 0, result.BusinessDays)
		assert.Equal(t, 0, result.PacingTotal)
		assert.Equal(t, 0, result.PacingBusiness)
	})
}

func TestCalculateAvgTicket(t *testing.T) {
	t.Run("Média ponderada pela quantidade", func(t *testing.T) {
		batches := []domain.BatchConfig{
			{Name: "Lote 1", Order: 1, Price: 100, Quantity: 50},
			{Name: "Lote 2", Order: 2, Price: 200, Quantity: 50},
		}

		assert.InDelta(t, 150.0, CalculateAvgTicket(batches), 1e-9)
	})

	t.Run("Sem ingressos a média é zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CalculateAvgTicket(nil))
		assert.Equal(t, 0.0, CalculateAvgTicket([]domain.BatchConfig{{Price: 100, Quantity: 0}}))
	})
}

func TestCalculateBatches(t *testing.T) {
	batches := []domain.BatchConfig{
		{Name: "Lote 1", Order: 1, Price: 97, Quantity: 100},
		{Name: "Lote 2", Order: 2, Price: 127, Quantity: 150},
		{Name: "Lote 3", Order: 3, Price: 147, Quantity: 200},
	}

	result := CalculateBatches(batches)
	assert.Len(t, result, 3)

	var totalRevenue float64
	for _, b := range batches {
		totalRevenue += b.Price * float64(b.Quantity)
	}

	// Acumulado final é a receita total e os percentuais fecham em 100
	assert.InDelta(t, totalRevenue, result[len(result)-1].Cumulative, 1e-9)

	var percentSum float64
	for _, b := range result {
		percentSum += b.PercentOfTotal
	}
	assert.InDelta(t, 100.0, percentSum, 1e-9)

	// Ordem de entrada preservada
	for i, b := range result {
		assert.Equal(t, batches[i].Name, b.Name)
		assert.InDelta(t, batches[i].Price*float64(batches[i].Quantity), b.Revenue, 1e-9)
	}
}

func TestCalculateBatches_ReceitaZero(t *testing.T) {
	result := CalculateBatches([]domain.BatchConfig{{Name: "Lote 1", Price: 0, Quantity: 0}})

	assert.Len(t, result, 1)
	assert.Equal(t, 0.0, result[0].PercentOfTotal)
}

func TestGenerateBatches(t *testing.T) {
	t.Run("Escada de 7 lotes com preço crescente", func(t *testing.T) {
		batches := GenerateBatches(100, 700, 7)

		assert.Len(t, batches, 7)
		for i, b := range batches {
			assert.Equal(t, i+1, b.Order)
			if i > 0 {
				assert.Greater(t, b.Price, batches[i-1].Price)
			}
		}

		// Primeiro lote com metade da quantidade, último com 1.5x
		assert.Equal(t, 50, batches[0].Quantity)
		assert.Equal(t, 150, batches[6].Quantity)
		assert.Equal(t, 100, batches[3].Quantity)

		// Incremento de 15% sobre o preço base
		assert.Equal(t, 100.0, batches[0].Price)
		assert.Equal(t, 115.0, batches[1].Price)
		assert.Equal(t, 190.0, batches[6].Price)
	})

	t.Run("Quantidade de lotes não positiva usa o padrão", func(t *testing.T) {
		batches := GenerateBatches(100, 700, 0)
		assert.Len(t, batches, DefaultBatchCount)
	})
}

func TestCalculateProjection(t *testing.T) {
	in := ProjectionInput{
		TargetTickets:      500,
		AvgTicket:          147,
		Budget:             50000,
		OrderBumpRate:      DefaultOrderBumpRate,
		AvgOrderBumpPrice:  DefaultOrderBumpPrice,
		ProductConversion:  DefaultProductConversion,
		ProductPrice:       DefaultProductPrice,
		DownsellConversion: DefaultDownsellConversion,
		DownsellPrice:      DefaultDownsellPrice,
	}

	scenarios := CalculateProjection(in)

	assert.Len(t, scenarios, 3)
	assert.Equal(t, "Pessimista", scenarios[0].Label)
	assert.Equal(t, "Realista", scenarios[1].Label)
	assert.Equal(t, "Otimista", scenarios[2].Label)

	// Receita cresce com o multiplicador do cenário
	assert.GreaterOrEqual(t, scenarios[1].TotalRevenue, scenarios[0].TotalRevenue)
	assert.GreaterOrEqual(t, scenarios[2].TotalRevenue, scenarios[1].TotalRevenue)

	// Cenário realista usa a meta cheia
	assert.Equal(t, 500, scenarios[1].Tickets)
	assert.InDelta(t, 500*147.0, scenarios[1].TicketRevenue, 1e-9)
	assert.InDelta(t, scenarios[1].TotalRevenue-50000, scenarios[1].Profit, 1e-9)
	assert.InDelta(t, scenarios[1].TotalRevenue/50000, scenarios[1].Roas, 1e-9)
}

func TestCalculateProjection_VerbaZero(t *testing.T) {
	scenarios := CalculateProjection(ProjectionInput{TargetTickets: 100, AvgTicket: 100})

	for _, sc := range scenarios {
		assert.Equal(t, 0.0, sc.Roas)
	}
}

func TestCalculateCashback(t *testing.T) {
	result := CalculateCashback(197, 997, 1000, 0.25)

	// Sem cashback: 650 presentes x 25% de conversão
	assert.Equal(t, 997.0, result.WithoutCashback.EffectivePrice)
	assert.Equal(t, 163, result.WithoutCashback.EstimatedSales)
	assert.InDelta(t, 162511.0, result.WithoutCashback.Revenue, 1e-9)

	// Com cashback: conversão sobe para 33.75% e o preço cai ao valor
	// descontado, mas as gravações são vendidas para todos os presentes
	assert.Equal(t, 800.0, result.WithCashback.EffectivePrice)
	assert.Equal(t, 219, result.WithCashback.EstimatedSales)
	assert.InDelta(t, 303250.0, result.WithCashback.Revenue, 1e-9)

	assert.InDelta(t, 35.0, result.Uplift, 1e-9)
}

func TestCalculateCashback_ConversaoZero(t *testing.T) {
	result := CalculateCashback(197, 997, 1000, 0)

	assert.Equal(t, 0.0, result.Uplift)
	assert.Equal(t, 0, result.WithoutCashback.EstimatedSales)
}

func TestCalculateRoas(t *testing.T) {
	result := CalculateRoas(50000, 73500, 24625, 81506, 16141)

	assert.InDelta(t, 195772.0, result.TotalRevenue, 1e-9)
	assert.InDelta(t, 3.915, result.Roas, 0.001)
	assert.InDelta(t, 145772.0, result.Profit, 1e-9)
	assert.InDelta(t, 74.46, result.Margin, 0.01)
}

func TestCalculateRoas_SemInvestimento(t *testing.T) {
	result := CalculateRoas(0, 1000, 0, 0, 0)

	assert.Equal(t, 0.0, result.Roas)
	assert.InDelta(t, 1000.0, result.Profit, 1e-9)
	assert.InDelta(t, 100.0, result.Margin, 1e-9)
}
