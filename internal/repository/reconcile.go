package repository

import (
	"context"
	"fmt"
)

// ReleaseStaleUnits frees units still marked dispatched after their
// last dispatch reached a terminal state. Returns how many units were
// repaired.
func (s *Store) ReleaseStaleUnits(ctx context.Context) (int64, error) {
	query := `
		UPDATE units
		SET current_status = 'available', current_dispatch_id = NULL,
		    last_status_change = NOW(), updated_at = NOW()
		WHERE current_status = 'dispatched'
		  AND NOT EXISTS (
		      SELECT 1 FROM dispatch_incidents di
		      WHERE di.unit_id = units.id
		        AND di.status IN ('pending', 'dispatched', 'en_route', 'arrived')
		  )
	`
	tag, err := s.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to release stale units: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ReleaseStaleVehicles frees vehicle overlay rows whose dispatch no
// longer exists or is terminal. Returns how many rows were repaired.
func (s *Store) ReleaseStaleVehicles(ctx context.Context) (int64, error) {
	query := `
		UPDATE vehicle_status vs
		SET status = 'available', unit_id = NULL, dispatch_id = NULL, last_updated = NOW()
		WHERE vs.status IN ('suggested', 'dispatched')
		  AND NOT EXISTS (
		      SELECT 1 FROM dispatch_incidents di
		      WHERE di.id = vs.dispatch_id
		        AND di.status IN ('pending', 'dispatched', 'en_route', 'arrived')
		  )
	`
	tag, err := s.db.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to release stale vehicles: %w", err)
	}
	return tag.RowsAffected(), nil
}
