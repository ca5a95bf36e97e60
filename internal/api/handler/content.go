package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/contenting"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
)

// ListContentTemplates lista o catálogo de tipos de conteúdo disponíveis
func ListContentTemplates(service contenting.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.ListTemplates()); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GenerateContent gera uma copy com IA a partir do contexto do lançamento
func GenerateContent(service contenting.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateContent")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		var request domain.GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		result, err := service.GenerateContent(id, &request)
		if err != nil {
			handleContentError(w, err)
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

// ListContents lista as copies geradas do lançamento
func ListContents(service contenting.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		contents, err := service.ListByLaunch(id)
		if err != nil {
			handleContentError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(contents); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateContent aprova/desaprova uma copy e o vínculo com o cronograma
func UpdateContent(service contenting.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentID := httprouter.ParamsFromContext(r.Context()).ByName("content_id")
		if contentID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do conteúdo não fornecido", nil)
			return
		}

		var request domain.UpdateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		request.ContentID = contentID

		if err := service.UpdateContent(&request); err != nil {
			handleContentError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteContent remove uma copy gerada, desfazendo o vínculo se houver
func DeleteContent(service contenting.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteContent")

		contentID := httprouter.ParamsFromContext(r.Context()).ByName("content_id")
		if contentID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do conteúdo não fornecido", nil)
			return
		}

		if err := service.DeleteContent(contentID); err != nil {
			handleContentError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleContentError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var contentErr *contenting.ContentError
	if errors.As(err, &contentErr) {
		apiErrors.WriteError(w, contentErr.Code, contentErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, contenting.ErrLaunchNotFound), errors.Is(err, contenting.ErrContentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, contenting.ErrInvalidType):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, contenting.ErrGenerationFailed):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar conteúdo com IA", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar conteúdo", nil)
	}
}
