package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontoflow/ponto-backend-go/internal/domain/schedule"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
)

type scheduleGroupRepository struct {
	db *database.DB
}

func NewScheduleGroupRepository(db *database.DB) schedule.GroupRepository {
	return &scheduleGroupRepository{db: db}
}

const groupColumns = `
	id, name, daily_minutes,
	works_monday, works_tuesday, works_wednesday, works_thursday,
	works_friday, works_saturday, works_sunday,
	created_at, updated_at
`

func scanGroup(row pgx.Row) (schedule.Group, error) {
	var g schedule.Group
	err := row.Scan(
		&g.ID, &g.Name, &g.DailyMinutes,
		&g.WorkdayFlags.Monday, &g.WorkdayFlags.Tuesday, &g.WorkdayFlags.Wednesday, &g.WorkdayFlags.Thursday,
		&g.WorkdayFlags.Friday, &g.WorkdayFlags.Saturday, &g.WorkdayFlags.Sunday,
		&g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

// GetByID implements schedule.GroupRepository.
func (r *scheduleGroupRepository) GetByID(ctx context.Context, id string) (schedule.Group, error) {
	q := GetQuerier(ctx, r.db)

	g, err := scanGroup(q.QueryRow(ctx, `SELECT `+groupColumns+` FROM schedule_groups WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Group{}, schedule.ErrGroupNotFound
		}
		return schedule.Group{}, fmt.Errorf("failed to get schedule group: %w", err)
	}
	return g, nil
}

// List implements schedule.GroupRepository.
func (r *scheduleGroupRepository) List(ctx context.Context) ([]schedule.Group, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+groupColumns+` FROM schedule_groups ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule groups: %w", err)
	}
	defer rows.Close()

	var groups []schedule.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule groups: %w", err)
	}

	return groups, nil
}

// Create implements schedule.GroupRepository.
func (r *scheduleGroupRepository) Create(ctx context.Context, g schedule.Group) (schedule.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_groups (
			name, daily_minutes,
			works_monday, works_tuesday, works_wednesday, works_thursday,
			works_friday, works_saturday, works_sunday
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		g.Name,
		g.DailyMinutes,
		g.WorkdayFlags.Monday,
		g.WorkdayFlags.Tuesday,
		g.WorkdayFlags.Wednesday,
		g.WorkdayFlags.Thursday,
		g.WorkdayFlags.Friday,
		g.WorkdayFlags.Saturday,
		g.WorkdayFlags.Sunday,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.Group{}, schedule.ErrGroupNameExists
		}
		return schedule.Group{}, fmt.Errorf("failed to create schedule group: %w", err)
	}

	return g, nil
}
