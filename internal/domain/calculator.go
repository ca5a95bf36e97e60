package domain

// Resultados das calculadoras financeiras do lançamento.
// Todos são objetos de valor: criados a cada chamada, sem identidade própria

// CpaCalculation é o teto de CPA para a verba de tráfego
type CpaCalculation struct {
	SalesBudget    float64 `json:"sales_budget"`
	TrafficTickets int     `json:"traffic_tickets"`
	MaxCPA         float64 `json:"max_cpa"`
}

// PacingCalculation é o ritmo diário de vendas necessário para bater a meta.
// BusinessDays usa a razão fixa 5/7 sobre o total de dias; é um modelo
// grosseiro que não consulta o calendário real de fins de semana
type PacingCalculation struct {
	TargetTickets  int `json:"target_tickets"`
	TotalDays      int `json:"total_days"`
	BusinessDays   int `json:"business_days"`
	PacingTotal    int `json:"pacing_total"`
	PacingBusiness int `json:"pacing_business"`
}

// BatchCalculation é o desdobramento de receita de um lote
type BatchCalculation struct {
	Name           string  `json:"name"`
	Order          int     `json:"order"`
	Price          float64 `json:"price"`
	Quantity       int     `json:"quantity"`
	Revenue        float64 `json:"revenue"`
	PercentOfTotal float64 `json:"percent_of_total"`
	Cumulative     float64 `json:"cumulative"`
}

// ProjectionScenario é um cenário de projeção de faturamento.
// Sempre produzido em trincas: Pessimista (0.7), Realista (1.0), Otimista (1.3)
type ProjectionScenario struct {
	Label            string  `json:"label"`
	Multiplier       float64 `json:"multiplier"`
	Tickets          int     `json:"tickets"`
	TicketRevenue    float64 `json:"ticket_revenue"`
	OrderBumpRevenue float64 `json:"order_bump_revenue"`
	ProductRevenue   float64 `json:"product_revenue"`
	DownsellRevenue  float64 `json:"downsell_revenue"`
	TotalRevenue     float64 `json:"total_revenue"`
	Roas             float64 `json:"roas"`
	Profit           float64 `json:"profit"`
}

// CashbackScenario é um dos lados da simulação de cashback
type CashbackScenario struct {
	EffectivePrice      float64 `json:"effective_price"`
	EstimatedConversion float64 `json:"estimated_conversion"`
	EstimatedSales      int     `json:"estimated_sales"`
	Revenue             float64 `json:"revenue"`
}

// CashbackCalculation compara a venda do high ticket com e sem o cashback
// das gravações
type CashbackCalculation struct {
	RecordingPrice  float64          `json:"recording_price"`
	ProductPrice    float64          `json:"product_price"`
	WithCashback    CashbackScenario `json:"with_cashback"`
	WithoutCashback CashbackScenario `json:"without_cashback"`
	Uplift          float64          `json:"uplift"`
}

// RoasCalculation agrega as quatro fontes de receita contra o investimento
type RoasCalculation struct {
	Investment       float64 `json:"investment"`
	TicketRevenue    float64 `json:"ticket_revenue"`
	OrderBumpRevenue float64 `json:"order_bump_revenue"`
	ProductRevenue   float64 `json:"product_revenue"`
	DownsellRevenue  float64 `json:"downsell_revenue"`
	TotalRevenue     float64 `json:"total_revenue"`
	Roas             float64 `json:"roas"`
	Profit           float64 `json:"profit"`
	Margin           float64 `json:"margin"`
}

// LaunchMetrics reúne as métricas financeiras recalculadas de um lançamento
type LaunchMetrics struct {
	LaunchID   string               `json:"launch_id"`
	MaxCPA     CpaCalculation       `json:"max_cpa"`
	Pacing     PacingCalculation    `json:"pacing"`
	AvgTicket  float64              `json:"avg_ticket"`
	Batches    []BatchCalculation   `json:"batches"`
	Projection []ProjectionScenario `json:"projection"`
}
