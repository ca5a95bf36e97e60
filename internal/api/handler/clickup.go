package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/exporting"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
)

// ListClickUpFolders lista as pastas e listas do espaço configurado no ClickUp
func ListClickUpFolders(service exporting.ExportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folders, err := service.ListFolders()
		if err != nil {
			handleExportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(folders); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// PreviewExport monta as tarefas do lançamento sem criá-las no ClickUp
func PreviewExport(service exporting.ExportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		request := &domain.ExportRequest{LaunchID: id}
		if r.URL.Query().Get("include_steps") == "true" {
			request.IncludeSteps = true
		}

		tasks, err := service.BuildTasks(request)
		if err != nil {
			handleExportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tasks); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ExportLaunch cria as tarefas do lançamento na lista informada do ClickUp
func ExportLaunch(service exporting.ExportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportLaunch")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lançamento não fornecido", nil)
			return
		}

		var request domain.ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		request.LaunchID = id

		result, err := service.ExportLaunch(&request)
		if err != nil {
			handleExportError(w, err)
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

func handleExportError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var exportErr *exporting.ExportError
	if errors.As(err, &exportErr) {
		apiErrors.WriteError(w, exportErr.Code, exportErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, exporting.ErrLaunchNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)

	case errors.Is(err, exporting.ErrListRequired), errors.Is(err, exporting.ErrNothingToExport):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, exporting.ErrExternalService):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao comunicar com o ClickUp", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao exportar lançamento", nil)
	}
}
