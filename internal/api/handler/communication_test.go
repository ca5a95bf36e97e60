package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/launch-planner-api/internal/domain"
	"github.com/vfg2006/launch-planner-api/internal/usecases/communicating"
	"github.com/vfg2006/launch-planner-api/internal/usecases/communicating/mocks"
	"github.com/vfg2006/launch-planner-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newUpdateCommunicationRequest(body, communicationID string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/v1/communications/"+communicationID, strings.NewReader(body))
	params := httprouter.Params{{Key: "communication_id", Value: communicationID}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestUpdateCommunication(t *testing.T) {
	t.Run("Aprova a comunicação com sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockCommunicationService(ctrl)
		mockService.EXPECT().
			UpdateCommunication(gomock.Any()).
			DoAndReturn(func(request *domain.UpdateCommunicationRequest) (*domain.Communication, error) {
				assert.Equal(t, "CMM001", request.CommunicationID)
				if assert.NotNil(t, request.Status) {
					assert.Equal(t, domain.CommunicationStatusApproved, *request.Status)
				}
				return &domain.Communication{ID: "CMM001", Status: domain.CommunicationStatusApproved}, nil
			})

		rec := httptest.NewRecorder()
		UpdateCommunication(mockService).ServeHTTP(rec, newUpdateCommunicationRequest(`{"status":"approved"}`, "CMM001"))

		assert.Equal(t, http.StatusOK, rec.Code)

		var communication domain.Communication
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&communication))
		assert.Equal(t, domain.CommunicationStatusApproved, communication.Status)
	})

	t.Run("Corpo null é tratado como atualização vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockCommunicationService(ctrl)
		mockService.EXPECT().
			UpdateCommunication(gomock.Any()).
			DoAndReturn(func(request *domain.UpdateCommunicationRequest) (*domain.Communication, error) {
				assert.Equal(t, "CMM001", request.CommunicationID)
				assert.Nil(t, request.Status)
				assert.Nil(t, request.ApprovedContentID)
				return &domain.Communication{ID: "CMM001", Status: domain.CommunicationStatusPending}, nil
			})

		rec := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			UpdateCommunication(mockService).ServeHTTP(rec, newUpdateCommunicationRequest(`null`, "CMM001"))
		})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Corpo inválido retorna erro de requisição", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockCommunicationService(ctrl)

		rec := httptest.NewRecorder()
		UpdateCommunication(mockService).ServeHTTP(rec, newUpdateCommunicationRequest(`{invalido`, "CMM001"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	})

	t.Run("Comunicação inexistente retorna não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockCommunicationService(ctrl)
		mockService.EXPECT().
			UpdateCommunication(gomock.Any()).
			Return(nil, communicating.NewCommunicationError(communicating.ErrCommunicationNotFound, apiErrors.ErrResourceNotFound, "Comunicação não encontrada"))

		rec := httptest.NewRecorder()
		UpdateCommunication(mockService).ServeHTTP(rec, newUpdateCommunicationRequest(`{"status":"approved"}`, "CMM999"))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrResourceNotFound, apiErr.Code)
	})
}
