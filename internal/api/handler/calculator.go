package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/calculating"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
)

// As calculadoras são puras: recebem o payload, calculam e devolvem o
// resultado sem tocar no banco

type CpaRequest struct {
	SalesBudget    float64 `json:"sales_budget"`
	TrafficTickets int     `json:"traffic_tickets"`
}

type PacingRequest struct {
	TargetTickets int `json:"target_tickets"`
	TotalDays     int `json:"total_days"`
}

type BatchesRequest struct {
	BasePrice    float64              `json:"base_price"`
	TotalTickets int                  `json:"total_tickets"`
	BatchCount   int                  `json:"batch_count"`
	Batches      []domain.BatchConfig `json:"batches"`
}

type BatchesResponse struct {
	Batches   []domain.BatchCalculation `json:"batches"`
	AvgTicket float64                   `json:"avg_ticket"`
}

type ProjectionRequest struct {
	TargetTickets      int     `json:"target_tickets"`
	AvgTicket          float64 `json:"avg_ticket"`
	Budget             float64 `json:"budget"`
	OrderBumpRate      float64 `json:"order_bump_rate"`
	AvgOrderBumpPrice  float64 `json:"avg_order_bump_price"`
	ProductConversion  float64 `json:"product_conversion"`
	ProductPrice       float64 `json:"product_price"`
	DownsellConversion float64 `json:"downsell_conversion"`
	DownsellPrice      float64 `json:"downsell_price"`
}

type CashbackRequest struct {
	RecordingPrice float64 `json:"recording_price"`
	ProductPrice   float64 `json:"product_price"`
	Tickets        int     `json:"tickets"`
	BaseConversion float64 `json:"base_conversion"`
}

type RoasRequest struct {
	Investment       float64 `json:"investment"`
	TicketRevenue    float64 `json:"ticket_revenue"`
	OrderBumpRevenue float64 `json:"order_bump_revenue"`
	ProductRevenue   float64 `json:"product_revenue"`
	DownsellRevenue  float64 `json:"downsell_revenue"`
}

// CalculateCpa calcula o CPA máximo para a verba de vendas
func CalculateCpa() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CpaRequest
		if !decodeCalculatorRequest(w, r, &req) {
			return
		}
		writeCalculatorResponse(w, calculating.CalculateMaxCPA(req.SalesBudget, req.TrafficTickets))
	}
}

// CalculatePacing calcula o ritmo diário de vendas
func CalculatePacing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PacingRequest
		if !decodeCalculatorRequest(w, r, &req) {
			return
		}
		writeCalculatorResponse(w, calculating.CalculatePacing(req.TargetTickets, req.TotalDays))
	}
}

// CalculateBatches calcula a escada de lotes. Sem lotes no payload, gera a
// escada padrão a partir do preço base
func CalculateBatches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchesRequest
		if !decodeCalculatorRequest(w, r, &req) {
			return
		}

		batches := req.Batches
		if len(batches) == 0 {
			if req.BasePrice <= 0 || req.TotalTickets <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe os lotes ou o preço base e o total de ingressos", nil)
				return
			}
			batches = calculating.GenerateBatches(req.BasePrice, req.TotalTickets, req.BatchCount)
		}

		writeCalculatorResponse(w, BatchesResponse{
			Batches:   calculating.CalculateBatches(batches),
			AvgTicket: calculating.CalculateAvgTicket(batches),
		})
	}
}

// CalculateProjection projeta o faturamento nos três cenários
func CalculateProjection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProjectionRequest
		if !decodeCalculatorRequest(w, r, &req) {
			return
		}

		scenarios := calculating.CalculateProjection(calculating.ProjectionInput{
			TargetTickets:      req.TargetTickets,
			AvgTicket:          req.AvgTicket,
			Budget:             req.Budget,
			OrderBumpRate:      defaultIfZero(req.OrderBumpRate, calculating.DefaultOrderBumpRate),
			AvgOrderBumpPrice:  defaultIfZero(req.AvgOrderBumpPrice, calculating.DefaultOrderBumpPrice),
			ProductConversion:  defaultIfZero(req.ProductConversion, calculating.DefaultProductConversion),
			ProductPrice:       defaultIfZero(req.ProductPrice, calculating.DefaultProductPrice),
			DownsellConversion: defaultIfZero(req.DownsellConversion, calculating.DefaultDownsellConversion),
			DownsellPrice:      defaultIfZero(req.DownsellPrice, calculating.DefaultDownsellPrice),
		})
		writeCalculatorResponse(w, scenarios)
	}
}

// CalculateCashback compara a venda do high ticket com e sem cashback.
// Ingressos e conversão base são opcionais e assumem o modelo padrão
func CalculateCashback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CashbackRequest
		if !decodeCalculatorRequest(w, r, &req) {
			return
		}

		tickets := req.Tickets
		if tickets == 0 {
			tickets = calculating.DefaultCashbackTickets
		}
		baseConversion := defaultIfZero(req.BaseConversion, calculating.DefaultBaseConversion)

		writeCalculatorResponse(w, calculating.CalculateCashback(req.RecordingPrice, req.ProductPrice, tickets, baseConversion))
	}
}

// CalculateRoas consolida a receita total e o retorno sobre investimento
func CalculateRoas() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RoasRequest
		if !decodeCalculatorRequest(w, r, &req) {
			return
		}
		writeCalculatorResponse(w, calculating.CalculateRoas(req.Investment, req.TicketRevenue, req.OrderBumpRevenue, req.ProductRevenue, req.DownsellRevenue))
	}
}

func defaultIfZero(value, fallback float64) float64 {
	if value == 0 {
		return fallback
	}
	return value
}

func decodeCalculatorRequest(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return false
	}
	return true
}

func writeCalculatorResponse(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}
