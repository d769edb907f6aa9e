package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pontoflow/ponto-backend-go/internal/config"
	"github.com/pontoflow/ponto-backend-go/internal/domain/company"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/fixtures"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontoflow/ponto-backend-go/internal/repository/postgresql"
)

// Seeds the demo employee with a realistic two-month punch history so the
// banco-de-horas report has data to show. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)

	comp, err := companyRepo.GetFirst(ctx)
	if errors.Is(err, company.ErrCompanyNotFound) {
		comp, err = companyRepo.Create(ctx, company.Company{
			Name:                "PontoFlow Demonstração Ltda",
			CNPJ:                "12345678000190",
			AllowedRadiusMeters: 100,
		})
	}
	if err != nil {
		log.Fatal("Error preparing company: ", err)
	}

	emp, err := employeeRepo.GetByUsername(ctx, fixtures.DemoUsername)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		fmt.Printf("Creating employee %s...\n", fixtures.DemoUsername)

		var hash []byte
		hash, err = bcrypt.GenerateFromPassword([]byte("123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Error hashing password: ", err)
		}

		// The employee row and the accrual start date land together.
		err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)
			emp, err = employeeRepo.Create(txCtx, employee.Employee{
				CompanyID: &comp.ID,
				Username:  fixtures.DemoUsername,
				Email:     "kleisley@exemplo.com",
				Role:      employee.RoleFuncionario,
			}, string(hash))
			if err != nil {
				return err
			}
			return employeeRepo.SetAccrualStartDate(txCtx, emp.ID, fixtures.DemoStartDate)
		})
	}
	if err != nil {
		log.Fatal("Error preparing employee: ", err)
	}

	holidays, err := fixtures.SeedHolidays(ctx, calendarRepo, comp.ID)
	if err != nil {
		log.Fatal("Error seeding holidays: ", err)
	}

	punches, err := fixtures.SeedPunches(ctx, punchRepo, emp.ID, cfg.Location())
	if err != nil {
		log.Fatal("Error seeding punches: ", err)
	}

	fmt.Printf("Concluído! %d feriados e %d batidas registradas.\n", holidays, punches)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	token, _, err := jwtService.GenerateAccessToken(emp.ID, emp.CompanyID, emp.Role)
	if err != nil {
		log.Fatal("Error generating dev token: ", err)
	}
	fmt.Printf("Dev access token:\n%s\n", token)
}
