package domain

// Benchmark é uma referência de mercado do playbook de lançamento pago
type Benchmark struct {
	ID     string  `json:"id"`
	Niche  string  `json:"niche"`
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}

// Benchmarks do playbook. Valores em BRL ou percentual conforme a unidade
var Benchmarks = []Benchmark{
	// Comportamento do CPA ao longo da campanha
	{ID: "cpa-inicio", Niche: "Geral", Metric: "CPA início de campanha", Value: 15, Unit: "BRL"},
	{ID: "cpa-inicio-teto", Niche: "Geral", Metric: "CPA início de campanha (teto)", Value: 28, Unit: "BRL"},
	{ID: "cpa-meio", Niche: "Geral", Metric: "CPA meio de campanha", Value: 40, Unit: "BRL"},
	{ID: "cpa-meio-teto", Niche: "Geral", Metric: "CPA meio de campanha (teto)", Value: 50, Unit: "BRL"},
	{ID: "cpa-final", Niche: "Geral", Metric: "CPA final de campanha", Value: 60, Unit: "BRL"},
	{ID: "cpa-final-teto", Niche: "Geral", Metric: "CPA final de campanha (teto)", Value: 90, Unit: "BRL"},
	{ID: "cpa-pago-min", Niche: "Geral", Metric: "CPA lançamento pago (mínimo)", Value: 33, Unit: "BRL"},

	// Conversão e comparecimento
	{ID: "showup-rate", Niche: "Geral", Metric: "Comparecimento ao evento", Value: 65, Unit: "%"},
	{ID: "conversao-high-ticket-min", Niche: "Geral", Metric: "Conversão high ticket no evento (mínimo)", Value: 15, Unit: "%"},
	{ID: "conversao-high-ticket-max", Niche: "Geral", Metric: "Conversão high ticket no evento (máximo)", Value: 33, Unit: "%"},
	{ID: "order-bump-gravacoes", Niche: "Geral", Metric: "Adesão ao bump de gravações", Value: 25, Unit: "%"},
	{ID: "downsell-conversao", Niche: "Geral", Metric: "Conversão do downsell", Value: 10, Unit: "%"},

	// Ingressos
	{ID: "ingresso-min", Niche: "Geral", Metric: "Preço de ingresso (mínimo)", Value: 19, Unit: "BRL"},
	{ID: "ingresso-max", Niche: "Geral", Metric: "Preço de ingresso (máximo)", Value: 497, Unit: "BRL"},
	{ID: "lotes-recomendados", Niche: "Geral", Metric: "Quantidade de lotes recomendada", Value: 7, Unit: "lotes"},
}
