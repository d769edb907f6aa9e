package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

// Create implements punch.PunchRepository. The unique index on
// (employee_id, punched_at) makes the insert duplicate-suppressing: a
// conflicting punch returns ErrDuplicatePunch and writes nothing.
func (r *punchRepository) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO punches (
			id, employee_id, punched_at, kind, latitude, longitude,
			location_valid, manually_edited, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (employee_id, punched_at) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.EmployeeID,
		p.PunchedAt,
		string(p.Kind),
		p.Latitude,
		p.Longitude,
		p.LocationValid,
		p.ManuallyEdited,
		p.Note,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// DO NOTHING swallowed the insert: a punch already exists at
			// this exact (employee, timestamp).
			return punch.Punch{}, punch.ErrDuplicatePunch
		}
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, punched_at, kind, latitude, longitude,
		       location_valid, manually_edited, note, created_at, updated_at
		FROM punches
		WHERE employee_id = $1
		  AND punched_at >= $2
		  AND punched_at < $3
		ORDER BY punched_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		var kind string
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PunchedAt, &kind, &p.Latitude, &p.Longitude,
			&p.LocationValid, &p.ManuallyEdited, &p.Note, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		p.Kind = punch.Kind(kind)
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}

// ExistsAt implements punch.PunchRepository.
func (r *punchRepository) ExistsAt(ctx context.Context, employeeID string, at time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM punches WHERE employee_id = $1 AND punched_at = $2)`,
		employeeID, at,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check punch existence: %w", err)
	}
	return exists, nil
}
