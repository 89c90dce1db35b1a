package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jampzdev/dispatch_coordination_system/internal/config"
	"github.com/jampzdev/dispatch_coordination_system/internal/matching"
	"github.com/jampzdev/dispatch_coordination_system/internal/models"
	"github.com/jampzdev/dispatch_coordination_system/internal/service"
	"github.com/jampzdev/dispatch_coordination_system/internal/service/mocks"
)

// newTestHandler builds a Handler over a mocked service, mounted on a
// test router the same way main mounts it.
func newTestHandler(t *testing.T) (*Handler, *mocks.MockDispatchService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDispatchService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output quiet

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authed() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func TestRecommend_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	rec := &service.Recommendation{
		Incident: &models.Incident{ID: 7, Title: "Warehouse fire"},
		Candidates: []matching.Candidate{
			{UnitID: 1, UnitName: "Engine 7", MatchScore: 95},
		},
		Reasoning:  "Incident analysis: HIGH priority fire emergency",
		Confidence: 90,
	}
	mockService.EXPECT().Recommend(gomock.Any(), int64(7)).Return(rec, nil).Times(1)

	bodyBytes, _ := json.Marshal(RecommendRequest{IncidentID: 7})
	w := makeRequest(router, "POST", "/api/v1/recommendations", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp RecommendResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Engine 7", resp.Recommendations[0].UnitName)
	assert.Equal(t, 90, resp.AIConfidence)
}

func TestRecommend_IncidentNotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Recommend(gomock.Any(), int64(99)).Return(nil, service.ErrIncidentNotFound).Times(1)

	bodyBytes, _ := json.Marshal(RecommendRequest{IncidentID: 99})
	w := makeRequest(router, "POST", "/api/v1/recommendations", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Incident not found")
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRecommend_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Recommend(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/recommendations", bytes.NewBufferString(`{"incident_id":`), authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateSuggestion_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	reqBody := CreateSuggestionRequest{
		IncidentID: 7,
		UnitID:     3,
		Vehicles: []VehicleRequest{
			{ID: 1, Name: "Fire Truck 1", Type: "Fire Truck"},
		},
		Reasoning: "Closest fire unit",
	}
	result := &service.SuggestionResult{
		SuggestionID: 42,
		Incident:     &models.Incident{ID: 7, Title: "Warehouse fire", DispatchStatus: models.DispatchStatusProcessing},
		Unit:         &models.Unit{ID: 3, Name: "Engine 7", CurrentStatus: models.UnitAvailable},
		VehiclesSaved: []models.VehicleSummary{
			{ID: 1, Name: "Fire Truck 1", Type: "Fire Truck"},
		},
	}

	mockService.EXPECT().
		CreateSuggestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req service.CreateSuggestionRequest) (*service.SuggestionResult, error) {
			assert.Equal(t, int64(7), req.IncidentID)
			assert.Equal(t, int64(3), req.UnitID)
			assert.Equal(t, "Closest fire unit", req.Notes)
			require.Len(t, req.Vehicles, 1)
			return result, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/suggestions", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp CreateSuggestionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.SuggestionID)
	assert.Equal(t, 1, resp.VehicleCount)
	assert.Equal(t, "Engine 7", resp.Unit.Name)
}

func TestCreateSuggestion_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateSuggestion(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CreateSuggestionRequest{UnitID: 3}) // missing incident_id
	w := makeRequest(router, "POST", "/api/v1/suggestions", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'IncidentID' failed on the 'required' tag")
}

func TestCreateSuggestion_DuplicatePending(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CreateSuggestion(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrDuplicateSuggestion).Times(1)

	bodyBytes, _ := json.Marshal(CreateSuggestionRequest{IncidentID: 7, UnitID: 3})
	w := makeRequest(router, "POST", "/api/v1/suggestions", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "pending suggestion")
}

func TestCreateSuggestion_IncidentNotReady(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CreateSuggestion(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrIncidentNotReady).Times(1)

	bodyBytes, _ := json.Marshal(CreateSuggestionRequest{IncidentID: 7, UnitID: 3})
	w := makeRequest(router, "POST", "/api/v1/suggestions", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "not ready")
}

func TestListPendingSuggestions_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListPendingSuggestions(gomock.Any()).Return([]models.DispatchDetails{
		{Dispatch: models.Dispatch{ID: 42, Status: models.DispatchPending}, UnitName: "Engine 7"},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/suggestions", nil, authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DispatchListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "Engine 7", resp.Dispatches[0].UnitName)
}

func TestDecideSuggestion_Approve(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Decide(gomock.Any(), service.DecisionRequest{
			SuggestionID: 42,
			Action:       "approve",
			Notes:        "responding now",
		}).
		Return("Dispatch approved and activated", nil).Times(1)

	bodyBytes, _ := json.Marshal(DecisionRequest{Action: "approve", SuggestionID: 42, ERNotes: "responding now"})
	w := makeRequest(router, "POST", "/api/v1/suggestions/decision", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DecisionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Dispatch approved and activated", resp.Message)
	assert.Equal(t, "approve", resp.Action)
}

func TestDecideSuggestion_UnknownAction(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Decide(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(DecisionRequest{Action: "defer", SuggestionID: 42})
	w := makeRequest(router, "POST", "/api/v1/suggestions/decision", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Action' failed on the 'oneof' tag")
}

func TestDecideSuggestion_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Decide(gomock.Any(), gomock.Any()).
		Return("", service.ErrSuggestionNotFound).Times(1)

	bodyBytes, _ := json.Marshal(DecisionRequest{Action: "reject", SuggestionID: 42})
	w := makeRequest(router, "POST", "/api/v1/suggestions/decision", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDirectDispatch_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	result := &service.DirectDispatchResult{
		DispatchID:     55,
		Incident:       &models.Incident{ID: 7, Title: "Warehouse fire", DispatchStatus: models.DispatchStatusProcessing},
		Unit:           &models.Unit{ID: 3, Name: "Engine 7", CurrentStatus: models.UnitDispatched},
		VolunteerCount: 6,
	}
	mockService.EXPECT().DirectDispatch(gomock.Any(), gomock.Any()).Return(result, nil).Times(1)

	bodyBytes, _ := json.Marshal(DirectDispatchRequest{IncidentID: 7, UnitID: 3})
	w := makeRequest(router, "POST", "/api/v1/dispatches", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp DirectDispatchResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(55), resp.DispatchID)
	assert.Equal(t, 6, resp.VolunteerCount)
}

func TestDirectDispatch_ActiveDispatchExists(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		DirectDispatch(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrActiveDispatchExists).Times(1)

	bodyBytes, _ := json.Marshal(DirectDispatchRequest{IncidentID: 7, UnitID: 3})
	w := makeRequest(router, "POST", "/api/v1/dispatches", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "active dispatch")
}

func TestListActiveDispatches_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListActiveDispatches(gomock.Any()).Return([]models.DispatchDetails{
		{Dispatch: models.Dispatch{ID: 55, Status: models.DispatchActive}},
		{Dispatch: models.Dispatch{ID: 56, Status: models.DispatchEnRoute}},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dispatches", nil, authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DispatchListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
}

func TestGetDispatch_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetDispatch(gomock.Any(), int64(55)).Return(&models.DispatchDetails{
		Dispatch: models.Dispatch{ID: 55, Status: models.DispatchActive},
		UnitName: "Engine 7",
		Volunteers: []models.Volunteer{
			{ID: 1, FullName: "Dana Reyes"},
		},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dispatches/55", nil, authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp DispatchResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Dispatch)
	assert.Equal(t, int64(55), resp.Dispatch.ID)
	assert.Len(t, resp.Dispatch.Volunteers, 1)
}

func TestGetDispatch_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetDispatch(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/dispatches/abc", nil, authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestGetDispatch_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetDispatch(gomock.Any(), int64(99)).Return(nil, service.ErrDispatchNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dispatches/99", nil, authed())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateDispatchStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), int64(55), models.DispatchEnRoute, "rolling").
		Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{NewStatus: models.DispatchEnRoute, Notes: "rolling"})
	w := makeRequest(router, "PUT", "/api/v1/dispatches/55/status", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dispatch status updated to en_route")
}

func TestUpdateDispatchStatus_InvalidTransition(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateStatus(gomock.Any(), int64(55), "completed", "").
		Return(service.ErrInvalidTransition).Times(1)

	bodyBytes, _ := json.Marshal(UpdateStatusRequest{NewStatus: "completed"})
	w := makeRequest(router, "PUT", "/api/v1/dispatches/55/status", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestUpdateDispatchVehicles_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateVehicles(gomock.Any(), int64(55), []models.VehicleSummary{
			{ID: 2, Name: "Ladder 3", Type: "Fire Truck"},
		}).
		Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(UpdateVehiclesRequest{
		Vehicles: []VehicleRequest{{ID: 2, Name: "Ladder 3", Type: "Fire Truck"}},
	})
	w := makeRequest(router, "PUT", "/api/v1/dispatches/55/vehicles", bytes.NewBuffer(bodyBytes), authed())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dispatch vehicles updated")
}

func TestListAvailableUnits_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListAvailableUnits(gomock.Any()).Return([]models.UnitSummary{
		{Unit: models.Unit{ID: 1, Name: "Engine 7"}, VolunteerCount: 8},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/units", nil, authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp UnitListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Units, 1)
	assert.Equal(t, 8, resp.Units[0].VolunteerCount)
}

func TestListVehicles_WithUnitFilter(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListVehiclesForUnit(gomock.Any(), int64(3)).Return([]models.FleetVehicle{
		{ID: 1, Name: "Fire Engine 1", Available: 1},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/vehicles?unit_id=3", nil, authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp VehicleListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Count)
}

func TestListVehicles_InvalidUnitID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListVehiclesForUnit(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/vehicles?unit_id=abc", nil, authed())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid unit_id")
}

func TestListUnitVolunteers_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListVolunteersForUnit(gomock.Any(), int64(3)).Return([]models.Volunteer{
		{ID: 1, FullName: "Dana Reyes"},
		{ID: 2, FullName: "Miguel Santos"},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/units/3/volunteers", nil, authed())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp VolunteerListResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
}

func TestListUnitVolunteers_UnitNotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListVolunteersForUnit(gomock.Any(), int64(99)).Return(nil, service.ErrUnitNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/units/99/volunteers", nil, authed())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestProtectedRoute_MissingKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListActiveDispatches(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/dispatches", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestProtectedRoute_InvalidKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListActiveDispatches(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/dispatches", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestProtectedRoute_BearerTokenAccepted(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListActiveDispatches(gomock.Any()).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/dispatches", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}
