package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

// dispatchTx wraps a pgx transaction with the row-level operations of
// the dispatch workflows.
type dispatchTx struct {
	q pgx.Tx
}

func (t *dispatchTx) GetIncidentForUpdate(ctx context.Context, id int64) (*models.Incident, error) {
	return getIncident(ctx, t.q, id, true)
}

func (t *dispatchTx) GetUnitForUpdate(ctx context.Context, id int64) (*models.Unit, error) {
	return getUnit(ctx, t.q, id, true)
}

func (t *dispatchTx) GetDispatch(ctx context.Context, id int64) (*models.Dispatch, error) {
	return getDispatch(ctx, t.q, id)
}

func (t *dispatchTx) UnitHasLiveDispatch(ctx context.Context, unitID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM dispatch_incidents
			WHERE unit_id = $1 AND status IN ('pending', 'dispatched', 'en_route', 'arrived')
		)
	`
	var exists bool
	if err := t.q.QueryRow(ctx, query, unitID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check unit dispatches: %w", err)
	}
	return exists, nil
}

func (t *dispatchTx) IncidentHasPendingSuggestion(ctx context.Context, incidentID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM dispatch_incidents
			WHERE incident_id = $1 AND status = 'pending'
		)
	`
	var exists bool
	if err := t.q.QueryRow(ctx, query, incidentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check incident suggestions: %w", err)
	}
	return exists, nil
}

func (t *dispatchTx) IncidentHasActiveDispatch(ctx context.Context, incidentID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM dispatch_incidents
			WHERE incident_id = $1 AND status IN ('dispatched', 'en_route', 'arrived')
		)
	`
	var exists bool
	if err := t.q.QueryRow(ctx, query, incidentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check incident dispatches: %w", err)
	}
	return exists, nil
}

func (t *dispatchTx) InsertDispatch(ctx context.Context, d *models.Dispatch) (int64, error) {
	vehiclesJSON, err := json.Marshal(d.Vehicles)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal vehicle snapshot: %w", err)
	}
	query := `
		INSERT INTO dispatch_incidents (incident_id, unit_id, vehicles_json, status, dispatched_by, dispatched_at, er_notes)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6)
		RETURNING id
	`
	var id int64
	err = t.q.QueryRow(ctx, query,
		d.IncidentID, d.UnitID, vehiclesJSON, d.Status, d.DispatchedBy, d.ERNotes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert dispatch: %w", err)
	}
	return id, nil
}

// timestampedNote prefixes a note with the hour and minute it was
// recorded, matching the er_notes audit format.
func timestampedNote(notes string) string {
	return fmt.Sprintf("%s - %s", time.Now().Format("15:04"), strings.TrimSpace(notes))
}

func (t *dispatchTx) UpdateDispatchStatus(ctx context.Context, id int64, status, notes string) error {
	var query string
	var args []any
	if strings.TrimSpace(notes) != "" {
		query = `
			UPDATE dispatch_incidents
			SET status = $1,
			    er_notes = TRIM(BOTH E'\n' FROM COALESCE(er_notes, '') || E'\n' || $2),
			    status_updated_at = NOW()
			WHERE id = $3
		`
		args = []any{status, timestampedNote(notes), id}
	} else {
		query = `
			UPDATE dispatch_incidents
			SET status = $1, status_updated_at = NOW()
			WHERE id = $2
		`
		args = []any{status, id}
	}
	if _, err := t.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update dispatch status: %w", err)
	}
	return nil
}

func (t *dispatchTx) AppendDispatchNotes(ctx context.Context, id int64, notes string) error {
	if strings.TrimSpace(notes) == "" {
		return nil
	}
	query := `
		UPDATE dispatch_incidents
		SET er_notes = TRIM(BOTH E'\n' FROM COALESCE(er_notes, '') || E'\n' || $1)
		WHERE id = $2
	`
	if _, err := t.q.Exec(ctx, query, timestampedNote(notes), id); err != nil {
		return fmt.Errorf("failed to append dispatch notes: %w", err)
	}
	return nil
}

func (t *dispatchTx) SetDispatchVehicles(ctx context.Context, id int64, vehicles []models.VehicleSummary) error {
	vehiclesJSON, err := json.Marshal(vehicles)
	if err != nil {
		return fmt.Errorf("failed to marshal vehicle snapshot: %w", err)
	}
	query := `UPDATE dispatch_incidents SET vehicles_json = $1 WHERE id = $2`
	if _, err := t.q.Exec(ctx, query, vehiclesJSON, id); err != nil {
		return fmt.Errorf("failed to update dispatch vehicles: %w", err)
	}
	return nil
}

func (t *dispatchTx) SetIncidentDispatch(ctx context.Context, incidentID int64, dispatchStatus string, dispatchID *int64) error {
	query := `
		UPDATE api_incidents
		SET dispatch_status = $1, dispatch_id = $2, updated_at = NOW()
		WHERE id = $3
	`
	if _, err := t.q.Exec(ctx, query, dispatchStatus, dispatchID, incidentID); err != nil {
		return fmt.Errorf("failed to update incident dispatch state: %w", err)
	}
	return nil
}

func (t *dispatchTx) MarkIncidentResponded(ctx context.Context, incidentID int64, respondedBy *int64) error {
	// dispatch_status stays processing while the dispatch is live; only
	// the responder stamp and the incident work state change here.
	query := `
		UPDATE api_incidents
		SET dispatch_status = 'processing', status = 'processing',
		    responded_by = $1, responded_at = NOW(), updated_at = NOW()
		WHERE id = $2
	`
	if _, err := t.q.Exec(ctx, query, respondedBy, incidentID); err != nil {
		return fmt.Errorf("failed to mark incident responded: %w", err)
	}
	return nil
}

func (t *dispatchTx) CloseIncident(ctx context.Context, incidentID int64) error {
	query := `
		UPDATE api_incidents
		SET dispatch_status = 'closed', status = 'closed', updated_at = NOW()
		WHERE id = $1
	`
	if _, err := t.q.Exec(ctx, query, incidentID); err != nil {
		return fmt.Errorf("failed to close incident: %w", err)
	}
	return nil
}

func (t *dispatchTx) SetUnitStatus(ctx context.Context, unitID int64, currentStatus string, dispatchID *int64) error {
	query := `
		UPDATE units
		SET current_status = $1, current_dispatch_id = $2, last_status_change = NOW(), updated_at = NOW()
		WHERE id = $3
	`
	if _, err := t.q.Exec(ctx, query, currentStatus, dispatchID, unitID); err != nil {
		return fmt.Errorf("failed to update unit status: %w", err)
	}
	return nil
}

func (t *dispatchTx) HoldVehicle(ctx context.Context, v models.VehicleSummary, unitID, dispatchID int64, status string) (bool, error) {
	// The conditional upsert leaves rows already held by another
	// dispatch untouched; zero rows affected signals the conflict.
	query := `
		INSERT INTO vehicle_status (vehicle_id, vehicle_name, vehicle_type, unit_id, dispatch_id, status, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (vehicle_id) DO UPDATE
		SET vehicle_name = EXCLUDED.vehicle_name,
		    vehicle_type = EXCLUDED.vehicle_type,
		    unit_id = EXCLUDED.unit_id,
		    dispatch_id = EXCLUDED.dispatch_id,
		    status = EXCLUDED.status,
		    last_updated = NOW()
		WHERE vehicle_status.status NOT IN ('suggested', 'dispatched')
		   OR vehicle_status.dispatch_id = EXCLUDED.dispatch_id
	`
	tag, err := t.q.Exec(ctx, query, v.ID, v.Name, v.Type, unitID, dispatchID, status)
	if err != nil {
		return false, fmt.Errorf("failed to hold vehicle %d: %w", v.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (t *dispatchTx) MarkVehiclesDispatched(ctx context.Context, dispatchID int64) error {
	query := `
		UPDATE vehicle_status
		SET status = 'dispatched', last_updated = NOW()
		WHERE dispatch_id = $1
	`
	if _, err := t.q.Exec(ctx, query, dispatchID); err != nil {
		return fmt.Errorf("failed to mark vehicles dispatched: %w", err)
	}
	return nil
}

func (t *dispatchTx) ReleaseVehicles(ctx context.Context, dispatchID int64) error {
	query := `
		UPDATE vehicle_status
		SET status = 'available', unit_id = NULL, dispatch_id = NULL, last_updated = NOW()
		WHERE dispatch_id = $1
	`
	if _, err := t.q.Exec(ctx, query, dispatchID); err != nil {
		return fmt.Errorf("failed to release vehicles: %w", err)
	}
	return nil
}
