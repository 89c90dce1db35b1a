package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
	"github.com/jampzdev/dispatch_coordination_system/internal/service"
)

func TestGetDispatch_NotFound(t *testing.T) {
	svc, _, storeMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()

	storeMock.EXPECT().GetDispatchDetails(ctx, int64(42)).Return(nil, nil)

	details, err := svc.GetDispatch(ctx, 42)
	assert.ErrorIs(t, err, service.ErrDispatchNotFound)
	assert.Nil(t, details)
}

func TestGetDispatch_AttachesVolunteers(t *testing.T) {
	svc, _, storeMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()

	storeMock.EXPECT().GetDispatchDetails(ctx, int64(42)).Return(&models.DispatchDetails{
		Dispatch: models.Dispatch{ID: 42, UnitID: 3},
		UnitName: "Engine 7",
	}, nil)
	storeMock.EXPECT().ListUnitVolunteers(ctx, int64(3)).Return([]models.Volunteer{
		{ID: 1, FullName: "Dana Reyes"},
		{ID: 2, FullName: "Miguel Santos"},
	}, nil)

	details, err := svc.GetDispatch(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, details.Volunteers, 2)
	assert.Equal(t, "Dana Reyes", details.Volunteers[0].FullName)
}

func TestListVehiclesForUnit_NoUnitReturnsAllFree(t *testing.T) {
	svc, _, storeMock, fleetMock, _ := newTestDispatchService(t)
	ctx := context.Background()

	fleetMock.EXPECT().AvailableVehicles(ctx).Return([]models.FleetVehicle{
		{ID: 1, Name: "Fire Engine 1", Available: 1},
		{ID: 2, Name: "Ambulance 7", Available: 1},
	}, nil)
	storeMock.EXPECT().HeldVehicleIDs(ctx).Return([]int64{2}, nil)

	vehicles, err := svc.ListVehiclesForUnit(ctx, 0)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, int64(1), vehicles[0].ID)
}

func TestListVehiclesForUnit_FiltersByUnitType(t *testing.T) {
	svc, _, storeMock, fleetMock, _ := newTestDispatchService(t)
	ctx := context.Background()

	fleetMock.EXPECT().AvailableVehicles(ctx).Return([]models.FleetVehicle{
		{ID: 1, Name: "Fire Engine 1", Type: "Fire Truck", Available: 1},
		{ID: 2, Name: "Mobile Command 1", Type: "Command Post", Available: 1},
	}, nil)
	storeMock.EXPECT().HeldVehicleIDs(ctx).Return(nil, nil)
	storeMock.EXPECT().GetUnit(ctx, int64(3)).Return(&models.Unit{ID: 3, Type: models.UnitTypeFire}, nil)

	vehicles, err := svc.ListVehiclesForUnit(ctx, 3)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Fire Engine 1", vehicles[0].Name)
}

func TestListVehiclesForUnit_UnitNotFound(t *testing.T) {
	svc, _, storeMock, fleetMock, _ := newTestDispatchService(t)
	ctx := context.Background()

	fleetMock.EXPECT().AvailableVehicles(ctx).Return(nil, nil)
	storeMock.EXPECT().HeldVehicleIDs(ctx).Return(nil, nil)
	storeMock.EXPECT().GetUnit(ctx, int64(99)).Return(nil, nil)

	vehicles, err := svc.ListVehiclesForUnit(ctx, 99)
	assert.ErrorIs(t, err, service.ErrUnitNotFound)
	assert.Nil(t, vehicles)
}

func TestListVolunteersForUnit_UnitNotFound(t *testing.T) {
	svc, _, storeMock, _, _ := newTestDispatchService(t)
	ctx := context.Background()

	storeMock.EXPECT().GetUnit(ctx, int64(99)).Return(nil, nil)

	volunteers, err := svc.ListVolunteersForUnit(ctx, 99)
	assert.ErrorIs(t, err, service.ErrUnitNotFound)
	assert.Nil(t, volunteers)
}
