package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
)

const dispatchDetailsColumns = `
	di.id, di.incident_id, di.unit_id, di.vehicles_json, di.status,
	di.dispatched_by, di.dispatched_at, COALESCE(di.er_notes, ''), di.status_updated_at,
	i.title, i.location, i.emergency_type, i.severity, i.status,
	u.unit_name, u.unit_code, u.unit_type, u.current_status
`

const dispatchDetailsFrom = `
	FROM dispatch_incidents di
	JOIN api_incidents i ON di.incident_id = i.id
	JOIN units u ON di.unit_id = u.id
`

func scanDispatchDetails(row pgx.Row) (*models.DispatchDetails, error) {
	d := &models.DispatchDetails{}
	var vehiclesJSON []byte
	err := row.Scan(
		&d.ID,
		&d.IncidentID,
		&d.UnitID,
		&vehiclesJSON,
		&d.Status,
		&d.DispatchedBy,
		&d.DispatchedAt,
		&d.ERNotes,
		&d.StatusUpdatedAt,
		&d.IncidentTitle,
		&d.IncidentLocation,
		&d.IncidentType,
		&d.IncidentSeverity,
		&d.IncidentStatus,
		&d.UnitName,
		&d.UnitCode,
		&d.UnitType,
		&d.UnitStatus,
	)
	if err != nil {
		return nil, err
	}
	if len(vehiclesJSON) > 0 {
		if err := json.Unmarshal(vehiclesJSON, &d.Vehicles); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vehicle snapshot: %w", err)
		}
	}
	return d, nil
}

func (s *Store) GetDispatchDetails(ctx context.Context, id int64) (*models.DispatchDetails, error) {
	query := `SELECT ` + dispatchDetailsColumns + dispatchDetailsFrom + ` WHERE di.id = $1`
	details, err := scanDispatchDetails(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dispatch details: %w", err)
	}
	return details, nil
}

func (s *Store) listDispatchDetails(ctx context.Context, query string, args ...any) ([]models.DispatchDetails, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatches: %w", err)
	}
	defer rows.Close()

	list := make([]models.DispatchDetails, 0)
	for rows.Next() {
		d, err := scanDispatchDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch details row: %w", err)
		}
		list = append(list, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dispatches: %w", err)
	}
	return list, nil
}

// ListPendingSuggestions returns every suggestion awaiting a decision,
// oldest first.
func (s *Store) ListPendingSuggestions(ctx context.Context) ([]models.DispatchDetails, error) {
	query := `SELECT ` + dispatchDetailsColumns + dispatchDetailsFrom + `
		WHERE di.status = 'pending'
		ORDER BY di.dispatched_at ASC
	`
	return s.listDispatchDetails(ctx, query)
}

// ListActiveDispatches returns live and recent dispatches for the
// operations board: non-terminal rows first in lifecycle order, then
// terminal rows from the last 24 hours, newest first within each group.
func (s *Store) ListActiveDispatches(ctx context.Context) ([]models.DispatchDetails, error) {
	query := `SELECT ` + dispatchDetailsColumns + dispatchDetailsFrom + `
		WHERE di.status IN ('dispatched', 'en_route', 'arrived')
		   OR (di.status IN ('completed', 'cancelled') AND di.dispatched_at > NOW() - INTERVAL '24 hours')
		ORDER BY CASE di.status
		           WHEN 'dispatched' THEN 1
		           WHEN 'en_route' THEN 2
		           WHEN 'arrived' THEN 3
		           ELSE 4
		         END,
		         di.dispatched_at DESC
		LIMIT 50
	`
	return s.listDispatchDetails(ctx, query)
}
