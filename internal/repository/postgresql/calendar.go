package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontoflow/ponto-backend-go/internal/domain/calendar"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
)

type calendarRepository struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.CalendarRepository {
	return &calendarRepository{db: db}
}

// ListHolidays implements calendar.CalendarRepository.
func (r *calendarRepository) ListHolidays(ctx context.Context, companyID string) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, company_id, date, label, created_at, updated_at
		FROM holidays
		WHERE company_id = $1
		ORDER BY date ASC
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.ID, &h.CompanyID, &h.Date, &h.Label, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// ListRecesses implements calendar.CalendarRepository.
func (r *calendarRepository) ListRecesses(ctx context.Context, companyID string) ([]calendar.Recess, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, company_id, label, start_date, end_date, created_at, updated_at
		FROM recesses
		WHERE company_id = $1
		ORDER BY start_date ASC
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recesses: %w", err)
	}
	defer rows.Close()

	var recesses []calendar.Recess
	for rows.Next() {
		var rec calendar.Recess
		if err := rows.Scan(&rec.ID, &rec.CompanyID, &rec.Label, &rec.StartDate, &rec.EndDate, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recess: %w", err)
		}
		recesses = append(recesses, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recesses: %w", err)
	}

	return recesses, nil
}

// CreateHoliday implements calendar.CalendarRepository. Holidays are
// unique per (company, date).
func (r *calendarRepository) CreateHoliday(ctx context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO holidays (company_id, date, label)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, h.CompanyID, h.Date, h.Label).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return calendar.Holiday{}, calendar.ErrHolidayExists
		}
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// CreateRecess implements calendar.CalendarRepository.
func (r *calendarRepository) CreateRecess(ctx context.Context, rec calendar.Recess) (calendar.Recess, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO recesses (company_id, label, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, rec.CompanyID, rec.Label, rec.StartDate, rec.EndDate).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return calendar.Recess{}, fmt.Errorf("failed to create recess: %w", err)
	}

	return rec, nil
}
