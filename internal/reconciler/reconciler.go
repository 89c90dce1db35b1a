package reconciler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/metrics"
)

// Store is the slice of the persistence layer the reconciler needs.
type Store interface {
	ReleaseStaleUnits(ctx context.Context) (int64, error)
	ReleaseStaleVehicles(ctx context.Context) (int64, error)
}

// Reconciler periodically sweeps resource state the workflows may have
// left behind: units still marked dispatched after their dispatch
// ended, and vehicle holds pointing at terminal dispatches. Normal
// operation never needs it; it exists for crashes and manual database
// edits.
type Reconciler struct {
	cron   *cron.Cron
	store  Store
	logger *logrus.Logger
}

func New(store Store, logger *logrus.Logger) *Reconciler {
	return &Reconciler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		store:  store,
		logger: logger,
	}
}

// Start registers the sweep on the given cron schedule and launches the
// scheduler.
func (r *Reconciler) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, r.sweep); err != nil {
		return err
	}
	r.cron.Start()
	r.logger.WithFields(logrus.Fields{
		"service":  "reconciler",
		"schedule": schedule,
	}).Info("Reconciler started")
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (r *Reconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Reconciler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := r.logger.WithField("service", "reconciler")

	units, err := r.store.ReleaseStaleUnits(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to release stale units")
	} else if units > 0 {
		metrics.ReconciledUnits.Add(float64(units))
		log.WithField("count", units).Warn("Released stale units")
	}

	vehicles, err := r.store.ReleaseStaleVehicles(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to release stale vehicles")
	} else if vehicles > 0 {
		log.WithField("count", vehicles).Warn("Released stale vehicle holds")
	}
}
