package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/communicating"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
)

// GetCalendar monta o cronograma de 44 dias do lançamento, sem persistir
func GetCalendar(service communicating.CommunicationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		calendar, err := service.GetCalendar(id)
		if err != nil {
			handleCommunicationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(calendar); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// InitializeCommunications materializa o cronograma como linhas pendentes
func InitializeCommunications(service communicating.CommunicationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - InitializeCommunications")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		result, err := service.InitializeCommunications(id)
		if err != nil {
			handleCommunicationError(w, err)
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

// ListCommunications lista as comunicações persistidas do lançamento
func ListCommunications(service communicating.CommunicationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		communications, err := service.ListByLaunch(id)
		if err != nil {
			handleCommunicationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(communications); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateCommunication aprova/desaprova uma ação ou vincula conteúdo aprovado
func UpdateCommunication(service communicating.CommunicationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commID := httprouter.ParamsFromContext(r.Context()).ByName("communication_id")
		if commID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da comunicação não fornecido", nil)
			return
		}

		var request domain.UpdateCommunicationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		request.CommunicationID = commID

		communication, err := service.UpdateCommunication(&request)
		if err != nil {
			handleCommunicationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(communication); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

func handleCommunicationError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var commErr *communicating.CommunicationError
	if errors.As(err, &commErr) {
		apiErrors.WriteError(w, commErr.Code, commErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, communicating.ErrLaunchNotFound), errors.Is(err, communicating.ErrCommunicationNotFound), errors.Is(err, communicating.ErrContentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, communicating.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar comunicação", nil)
	}
}
