package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontoflow/ponto-backend-go/internal/domain/company"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}

const companyColumns = `
	id, name, cnpj, office_latitude, office_longitude, allowed_radius_meters,
	created_at, updated_at
`

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.OfficeLatitude, &c.OfficeLongitude, &c.AllowedRadiusMeters,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// GetByID implements company.CompanyRepository.
func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCompany(q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

// GetFirst implements company.CompanyRepository. Used by the seed tool.
func (r *companyRepository) GetFirst(ctx context.Context) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCompany(q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at ASC LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get first company: %w", err)
	}
	return c, nil
}

// Create implements company.CompanyRepository.
func (r *companyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO companies (name, cnpj, office_latitude, office_longitude, allowed_radius_meters)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, c.Name, c.CNPJ, c.OfficeLatitude, c.OfficeLongitude, c.AllowedRadiusMeters).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return company.Company{}, company.ErrCNPJExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return c, nil
}
