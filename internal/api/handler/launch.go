package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/launching"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
)

// CreateLaunch cria um novo lançamento com lotes, produtos e order bumps
func CreateLaunch(service launching.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateLaunch")

		var form *domain.LaunchFormData
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		launch, err := service.CreateLaunch(r.Context(), form)
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(launch); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetLaunch retorna um lançamento pelo ID
func GetLaunch(service launching.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		launch, err := service.GetLaunch(id)
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(launch); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListLaunches lista os lançamentos, com filtro opcional de status
// via query string (?status=active,draft)
func ListLaunches(service launching.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var statuses []domain.LaunchStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			for _, s := range strings.Split(raw, ",") {
				statuses = append(statuses, domain.LaunchStatus(strings.TrimSpace(s)))
			}
		}

		launches, err := service.ListLaunches(statuses)
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(launches); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateLaunch atualiza campos de um lançamento e recalcula as métricas
// derivadas quando meta, verba ou janela de vendas mudam
func UpdateLaunch(service launching.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		var request domain.UpdateLaunchRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		request.ID = id

		launch, err := service.UpdateLaunch(&request)
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(launch); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeleteLaunch remove um lançamento e seus registros dependentes
func DeleteLaunch(service launching.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteLaunch")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		if err := service.DeleteLaunch(r.Context(), id); err != nil {
			handleLaunchError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetLaunchMetrics recalcula as métricas financeiras do lançamento
func GetLaunchMetrics(service launching.LaunchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		metrics, err := service.GetMetrics(id)
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleLaunchError converte erros do caso de uso na resposta HTTP apropriada
func handleLaunchError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var launchErr *launching.LaunchError
	if errors.As(err, &launchErr) {
		apiErrors.WriteError(w, launchErr.Code, launchErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, launching.ErrLaunchNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Lançamento não encontrado", nil)

	case errors.Is(err, launching.ErrNameRequired), errors.Is(err, launching.ErrInvalidEventDate), errors.Is(err, launching.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar lançamento", nil)
	}
}
