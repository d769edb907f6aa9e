package main

import (
	"fmt"
	"net/http"

	"github.com/pontoflow/ponto-backend-go/internal/config"
	appHTTP "github.com/pontoflow/ponto-backend-go/internal/handler/http"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontoflow/ponto-backend-go/internal/repository/postgresql"
	calendarService "github.com/pontoflow/ponto-backend-go/internal/service/calendar"
	punchService "github.com/pontoflow/ponto-backend-go/internal/service/punch"
	scheduleService "github.com/pontoflow/ponto-backend-go/internal/service/schedule"
	timesheetService "github.com/pontoflow/ponto-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	punchRepo := postgresql.NewPunchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	groupRepo := postgresql.NewScheduleGroupRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	loc := cfg.Location()
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo, companyRepo, loc)
	timesheetSvc := timesheetService.NewTimesheetService(
		punchRepo,
		employeeRepo,
		groupRepo,
		calendarRepo,
		loc,
		timesheetService.PairingMode(cfg.Punch.PairingMode),
		cfg.Punch.ExportPageRows,
	)
	scheduleSvc := scheduleService.NewGroupService(groupRepo)
	calendarSvc := calendarService.NewCalendarService(calendarRepo, loc)

	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		punchHandler,
		timesheetHandler,
		scheduleHandler,
		calendarHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
