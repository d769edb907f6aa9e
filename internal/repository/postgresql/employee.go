package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, company_id, username, email, role, daily_minutes, schedule_group_id,
	hybrid_work, use_individual_schedule,
	works_monday, works_tuesday, works_wednesday, works_thursday,
	works_friday, works_saturday, works_sunday,
	accrual_start_date, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var role string
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.Username, &e.Email, &role, &e.DailyMinutes, &e.ScheduleGroupID,
		&e.HybridWork, &e.UseIndividualSchedule,
		&e.WorkdayFlags.Monday, &e.WorkdayFlags.Tuesday, &e.WorkdayFlags.Wednesday, &e.WorkdayFlags.Thursday,
		&e.WorkdayFlags.Friday, &e.WorkdayFlags.Saturday, &e.WorkdayFlags.Sunday,
		&e.AccrualStartDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	e.Role = employee.Role(role)
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return e, nil
}

// GetByUsername implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(username) = LOWER($1)`
	e, err := scanEmployee(q.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by username: %w", err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee, passwordHash string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			company_id, username, email, password_hash, role, daily_minutes,
			schedule_group_id, hybrid_work, use_individual_schedule,
			works_monday, works_tuesday, works_wednesday, works_thursday,
			works_friday, works_saturday, works_sunday, accrual_start_date
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.CompanyID,
		newEmployee.Username,
		newEmployee.Email,
		passwordHash,
		string(newEmployee.Role),
		newEmployee.DailyMinutes,
		newEmployee.ScheduleGroupID,
		newEmployee.HybridWork,
		newEmployee.UseIndividualSchedule,
		newEmployee.WorkdayFlags.Monday,
		newEmployee.WorkdayFlags.Tuesday,
		newEmployee.WorkdayFlags.Wednesday,
		newEmployee.WorkdayFlags.Thursday,
		newEmployee.WorkdayFlags.Friday,
		newEmployee.WorkdayFlags.Saturday,
		newEmployee.WorkdayFlags.Sunday,
		newEmployee.AccrualStartDate,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// SetAccrualStartDate implements employee.EmployeeRepository.
func (r *employeeRepository) SetAccrualStartDate(ctx context.Context, id string, start time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE employees SET accrual_start_date = $2, updated_at = NOW() WHERE id = $1`,
		id, start,
	)
	if err != nil {
		return fmt.Errorf("failed to set accrual start date: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
