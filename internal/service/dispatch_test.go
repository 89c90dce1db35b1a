package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/jampzdev/dispatch_coordination_system/internal/config"
	"github.com/jampzdev/dispatch_coordination_system/internal/matching"
	notifymocks "github.com/jampzdev/dispatch_coordination_system/internal/notify/mocks"
	"github.com/jampzdev/dispatch_coordination_system/internal/service"
	"github.com/jampzdev/dispatch_coordination_system/internal/service/mocks"
)

// newTestDispatchService builds a service instance with mocked
// collaborators and a jitter-free scorer so scores are deterministic.
// The returned config is the same instance the service reads, so tests
// can flip feature switches after construction.
func newTestDispatchService(t *testing.T) (service.DispatchService, *config.Config, *mocks.MockStore, *mocks.MockFleetClient, *notifymocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockStore(ctrl)
	fleetMock := mocks.NewMockFleetClient(ctrl)
	publisherMock := notifymocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output quiet

	cfg := &config.Config{}

	svc := service.NewDispatchService(storeMock, fleetMock, matching.NewScorer(nil), publisherMock, logger, cfg)
	return svc, cfg, storeMock, fleetMock, publisherMock
}

// expectTransaction routes WithTransaction through the given Tx mock.
func expectTransaction(storeMock *mocks.MockStore, txMock *mocks.MockTx) {
	storeMock.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(service.Tx) error) error {
			return fn(txMock)
		})
}

func int64Ptr(v int64) *int64 { return &v }
