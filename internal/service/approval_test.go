package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
	"github.com/jampzdev/dispatch_coordination_system/internal/notify"
	"github.com/jampzdev/dispatch_coordination_system/internal/service"
	"github.com/jampzdev/dispatch_coordination_system/internal/service/mocks"
)

func TestDecide_InvalidAction(t *testing.T) {
	svc, _, _, _, _ := newTestDispatchService(t)

	_, err := svc.Decide(context.Background(), service.DecisionRequest{SuggestionID: 1, Action: "defer"})
	assert.ErrorIs(t, err, service.ErrInvalidAction)
}

func TestDecide_SuggestionNotFound(t *testing.T) {
	svc, _, storeMock, _, _ := newTestDispatchService(t)
	txMock := mocks.NewMockTx(gomock.NewController(t))
	ctx := context.Background()

	expectTransaction(storeMock, txMock)
	txMock.EXPECT().GetDispatch(ctx, int64(42)).Return(nil, nil)

	_, err := svc.Decide(ctx, service.DecisionRequest{SuggestionID: 42, Action: service.ActionApprove})
	assert.ErrorIs(t, err, service.ErrSuggestionNotFound)
}

func TestDecide_ApproveActivatesDispatch(t *testing.T) {
	svc, _, storeMock, _, publisherMock := newTestDispatchService(t)
	txMock := mocks.NewMockTx(gomock.NewController(t))
	ctx := context.Background()

	suggestion := &models.Dispatch{ID: 42, IncidentID: 7, UnitID: 3, Status: models.DispatchPending}
	incident := &models.Incident{ID: 7, Title: "Warehouse fire", Location: "Dock 4", Severity: "high"}
	unit := &models.Unit{ID: 3, Name: "Engine 1", Code: "F-01"}

	expectTransaction(storeMock, txMock)
	txMock.EXPECT().GetDispatch(ctx, int64(42)).Return(suggestion, nil)
	txMock.EXPECT().GetIncidentForUpdate(ctx, int64(7)).Return(incident, nil)
	txMock.EXPECT().GetUnitForUpdate(ctx, int64(3)).Return(unit, nil)
	txMock.EXPECT().UpdateDispatchStatus(ctx, int64(42), models.DispatchActive, "responding now").Return(nil)
	txMock.EXPECT().SetIncidentDispatch(ctx, int64(7), models.DispatchStatusProcessing, int64Ptr(42)).Return(nil)
	txMock.EXPECT().MarkIncidentResponded(ctx, int64(7), int64Ptr(9)).Return(nil)
	txMock.EXPECT().SetUnitStatus(ctx, int64(3), models.UnitDispatched, int64Ptr(42)).Return(nil)
	txMock.EXPECT().MarkVehiclesDispatched(ctx, int64(42)).Return(nil)

	storeMock.EXPECT().CountUnitVolunteers(ctx, int64(3)).Return(4, nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event notify.DispatchEvent) error {
			assert.Equal(t, notify.EventDispatchApproved, event.Type)
			assert.Equal(t, int64(42), event.DispatchID)
			assert.Equal(t, 4, event.VolunteerCount)
			return nil
		})

	message, err := svc.Decide(ctx, service.DecisionRequest{
		SuggestionID: 42,
		Action:       service.ActionApprove,
		Notes:        "responding now",
		ApprovedBy:   int64Ptr(9),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dispatch approved and activated", message)
}

func TestDecide_RejectReleasesResources(t *testing.T) {
	svc, _, storeMock, _, _ := newTestDispatchService(t)
	txMock := mocks.NewMockTx(gomock.NewController(t))
	ctx := context.Background()

	suggestion := &models.Dispatch{ID: 42, IncidentID: 7, UnitID: 3, Status: models.DispatchPending}
	incident := &models.Incident{ID: 7}
	unit := &models.Unit{ID: 3}

	expectTransaction(storeMock, txMock)
	txMock.EXPECT().GetDispatch(ctx, int64(42)).Return(suggestion, nil)
	txMock.EXPECT().GetIncidentForUpdate(ctx, int64(7)).Return(incident, nil)
	txMock.EXPECT().GetUnitForUpdate(ctx, int64(3)).Return(unit, nil)
	txMock.EXPECT().UpdateDispatchStatus(ctx, int64(42), models.DispatchCancelled, "").Return(nil)
	txMock.EXPECT().SetIncidentDispatch(ctx, int64(7), models.DispatchStatusForDispatch, nil).Return(nil)
	txMock.EXPECT().SetUnitStatus(ctx, int64(3), models.UnitAvailable, nil).Return(nil)
	txMock.EXPECT().ReleaseVehicles(ctx, int64(42)).Return(nil)

	message, err := svc.Decide(ctx, service.DecisionRequest{SuggestionID: 42, Action: service.ActionReject})
	require.NoError(t, err)
	assert.Equal(t, "Suggestion rejected and resources made available", message)
}

func TestDecide_RollbackOnFailure(t *testing.T) {
	svc, _, storeMock, _, _ := newTestDispatchService(t)
	txMock := mocks.NewMockTx(gomock.NewController(t))
	ctx := context.Background()

	suggestion := &models.Dispatch{ID: 42, IncidentID: 7, UnitID: 3, Status: models.DispatchPending}

	expectTransaction(storeMock, txMock)
	txMock.EXPECT().GetDispatch(ctx, int64(42)).Return(suggestion, nil)
	txMock.EXPECT().GetIncidentForUpdate(ctx, int64(7)).Return(nil, nil)

	_, err := svc.Decide(ctx, service.DecisionRequest{SuggestionID: 42, Action: service.ActionApprove})
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}
