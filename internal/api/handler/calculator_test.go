package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/internal/domain"
)

func TestCalculateCashback(t *testing.T) {
	t.Run("Campos opcionais omitidos assumem o modelo padrão", func(t *testing.T) {
		body := `{"recording_price":197,"product_price":997}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/cashback", strings.NewReader(body))
		rec := httptest.NewRecorder()

		CalculateCashback().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var result domain.CashbackCalculation
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&result))

		// 1000 ingressos e conversão base de 25%: 650 presentes
		assert.Equal(t, 163, result.WithoutCashback.EstimatedSales)
		assert.InDelta(t, 162511.0, result.WithoutCashback.Revenue, 1e-9)
		assert.Equal(t, 219, result.WithCashback.EstimatedSales)
		assert.InDelta(t, 303250.0, result.WithCashback.Revenue, 1e-9)
		assert.InDelta(t, 35.0, result.Uplift, 1e-9)
	})

	t.Run("Valores informados não são substituídos pelos padrões", func(t *testing.T) {
		body := `{"recording_price":100,"product_price":500,"tickets":200,"base_conversion":0.2}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/cashback", strings.NewReader(body))
		rec := httptest.NewRecorder()

		CalculateCashback().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var result domain.CashbackCalculation
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&result))

		// 200 ingressos: 130 presentes; 20% base, 27% com cashback
		assert.Equal(t, 26, result.WithoutCashback.EstimatedSales)
		assert.InDelta(t, 13000.0, result.WithoutCashback.Revenue, 1e-9)
		assert.Equal(t, 35, result.WithCashback.EstimatedSales)
		assert.InDelta(t, 27000.0, result.WithCashback.Revenue, 1e-9)
	})
}

func TestCalculateProjection(t *testing.T) {
	t.Run("Taxas e preços omitidos assumem os padrões", func(t *testing.T) {
		body := `{"target_tickets":1000,"avg_ticket":50,"budget":30000}`
		req := httptest.NewRequest(http.MethodPost, "/v1/calculators/projection", strings.NewReader(body))
		rec := httptest.NewRecorder()

		CalculateProjection().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var scenarios []domain.ProjectionScenario
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&scenarios))
		assert.Len(t, scenarios, 3)

		realista := scenarios[1]
		assert.Equal(t, "Realista", realista.Label)
		assert.Equal(t, 1000, realista.Tickets)
		assert.InDelta(t, 50000.0, realista.TicketRevenue, 1e-9)
		assert.InDelta(t, 49250.0, realista.OrderBumpRevenue, 1e-9)
		assert.InDelta(t, 162511.0, realista.ProductRevenue, 1e-9)
		assert.InDelta(t, 24353.0, realista.DownsellRevenue, 1e-9)
		assert.InDelta(t, 286114.0, realista.TotalRevenue, 1e-9)
	})
}
