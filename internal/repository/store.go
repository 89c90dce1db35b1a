package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jampzdev/dispatch_coordination_system/internal/models"
	"github.com/jampzdev/dispatch_coordination_system/internal/service"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so the read
// helpers can run inside or outside a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is the pgx-backed implementation of the dispatch persistence
// contract.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

var _ service.Store = (*Store)(nil)

// WithTransaction runs fn inside one transaction. Any error from fn
// (or the commit) rolls every write back.
func (s *Store) WithTransaction(ctx context.Context, fn func(tx service.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if err := fn(&dispatchTx{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const incidentColumns = `
	id, title, description, location, emergency_type,
	COALESCE(rescue_category, ''), severity,
	COALESCE(caller_name, ''), COALESCE(caller_phone, ''),
	status, dispatch_status, dispatch_id,
	responded_by, responded_at, created_at, updated_at
`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.Location,
		&incident.EmergencyType,
		&incident.RescueCategory,
		&incident.Severity,
		&incident.CallerName,
		&incident.CallerPhone,
		&incident.Status,
		&incident.DispatchStatus,
		&incident.DispatchID,
		&incident.RespondedBy,
		&incident.RespondedAt,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan incident row: %w", err)
	}
	return incident, nil
}

func getIncident(ctx context.Context, q querier, id int64, forUpdate bool) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM api_incidents WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	return scanIncident(q.QueryRow(ctx, query, id))
}

const unitColumns = `
	id, unit_name, unit_code, unit_type, COALESCE(location, ''),
	capacity, status, current_status, current_dispatch_id,
	last_status_change, created_at, updated_at
`

func scanUnit(row pgx.Row) (*models.Unit, error) {
	unit := &models.Unit{}
	err := row.Scan(
		&unit.ID,
		&unit.Name,
		&unit.Code,
		&unit.Type,
		&unit.Location,
		&unit.Capacity,
		&unit.Status,
		&unit.CurrentStatus,
		&unit.CurrentDispatchID,
		&unit.LastStatusChange,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan unit row: %w", err)
	}
	return unit, nil
}

func getUnit(ctx context.Context, q querier, id int64, forUpdate bool) (*models.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	return scanUnit(q.QueryRow(ctx, query, id))
}

func getDispatch(ctx context.Context, q querier, id int64) (*models.Dispatch, error) {
	query := `
		SELECT id, incident_id, unit_id, vehicles_json, status,
		       dispatched_by, dispatched_at, COALESCE(er_notes, ''), status_updated_at
		FROM dispatch_incidents
		WHERE id = $1
	`
	dispatch := &models.Dispatch{}
	var vehiclesJSON []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&dispatch.ID,
		&dispatch.IncidentID,
		&dispatch.UnitID,
		&vehiclesJSON,
		&dispatch.Status,
		&dispatch.DispatchedBy,
		&dispatch.DispatchedAt,
		&dispatch.ERNotes,
		&dispatch.StatusUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan dispatch row: %w", err)
	}
	if len(vehiclesJSON) > 0 {
		if err := json.Unmarshal(vehiclesJSON, &dispatch.Vehicles); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vehicle snapshot: %w", err)
		}
	}
	return dispatch, nil
}

func (s *Store) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	return getIncident(ctx, s.db, id, false)
}

func (s *Store) GetUnit(ctx context.Context, id int64) (*models.Unit, error) {
	return getUnit(ctx, s.db, id, false)
}

// ListAvailableUnits returns active, available units without a pending
// suggestion, with their approved volunteer headcounts.
func (s *Store) ListAvailableUnits(ctx context.Context) ([]models.UnitSummary, error) {
	query := `
		SELECT ` + unitColumns + `,
		       (SELECT COUNT(*)
		        FROM volunteer_assignments va
		        JOIN volunteers v ON va.volunteer_id = v.id
		        WHERE va.unit_id = units.id
		          AND v.status = 'approved'
		          AND va.status = 'Active') AS volunteer_count
		FROM units
		WHERE status = 'Active'
		  AND current_status = 'available'
		  AND NOT EXISTS (
		      SELECT 1 FROM dispatch_incidents di
		      WHERE di.unit_id = units.id AND di.status = 'pending'
		  )
		ORDER BY unit_type, unit_name
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list available units: %w", err)
	}
	defer rows.Close()

	units := make([]models.UnitSummary, 0)
	for rows.Next() {
		var u models.UnitSummary
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Code,
			&u.Type,
			&u.Location,
			&u.Capacity,
			&u.Status,
			&u.CurrentStatus,
			&u.CurrentDispatchID,
			&u.LastStatusChange,
			&u.CreatedAt,
			&u.UpdatedAt,
			&u.VolunteerCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit summary row: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating available units: %w", err)
	}
	return units, nil
}

func (s *Store) CountUnitVolunteers(ctx context.Context, unitID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM volunteer_assignments va
		JOIN volunteers v ON va.volunteer_id = v.id
		WHERE va.unit_id = $1 AND v.status = 'approved' AND va.status = 'Active'
	`
	var count int
	if err := s.db.QueryRow(ctx, query, unitID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unit volunteers: %w", err)
	}
	return count, nil
}

func (s *Store) ListUnitVolunteers(ctx context.Context, unitID int64) ([]models.Volunteer, error) {
	query := `
		SELECT v.id, v.full_name, COALESCE(v.contact_number, ''), COALESCE(v.email, '')
		FROM volunteers v
		JOIN volunteer_assignments va ON v.id = va.volunteer_id
		WHERE va.unit_id = $1
		  AND v.status = 'approved'
		  AND va.status = 'Active'
		ORDER BY v.full_name
	`
	rows, err := s.db.Query(ctx, query, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unit volunteers: %w", err)
	}
	defer rows.Close()

	volunteers := make([]models.Volunteer, 0)
	for rows.Next() {
		var v models.Volunteer
		if err := rows.Scan(&v.ID, &v.FullName, &v.ContactNumber, &v.Email); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer row: %w", err)
		}
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit volunteers: %w", err)
	}
	return volunteers, nil
}

func (s *Store) HeldVehicleIDs(ctx context.Context) ([]int64, error) {
	query := `SELECT vehicle_id FROM vehicle_status WHERE status IN ('suggested', 'dispatched')`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list held vehicles: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan held vehicle row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating held vehicles: %w", err)
	}
	return ids, nil
}
