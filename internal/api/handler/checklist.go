package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/checklisting"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
)

// InitializeSteps materializa o checklist operacional do lançamento
func InitializeSteps(service checklisting.ChecklistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - InitializeSteps")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		result, err := service.InitializeSteps(r.Context(), id)
		if err != nil {
			handleChecklistError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListSteps lista os passos do checklist com seus itens
func ListSteps(service checklisting.ChecklistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		steps, err := service.ListSteps(id)
		if err != nil {
			handleChecklistError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(steps); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateStep marca um passo ou um item do checklist
func UpdateStep(service checklisting.ChecklistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stepID := httprouter.ParamsFromContext(r.Context()).ByName("step_id")
		if stepID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do passo não fornecido", nil)
			return
		}

		var request domain.UpdateStepRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		request.StepID = stepID

		if err := service.UpdateStep(&request); err != nil {
			handleChecklistError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetProgress resume o avanço do checklist por fase
func GetProgress(service checklisting.ChecklistService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		progress, err := service.GetProgress(id)
		if err != nil {
			handleChecklistError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(progress); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func handleChecklistError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var checklistErr *checklisting.ChecklistError
	if errors.As(err, &checklistErr) {
		apiErrors.WriteError(w, checklistErr.Code, checklistErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, checklisting.ErrLaunchNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Lançamento não encontrado", nil)

	case errors.Is(err, checklisting.ErrInvalidStatus), errors.Is(err, checklisting.ErrMissingTarget):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar checklist", nil)
	}
}
