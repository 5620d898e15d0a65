package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendhq/attendance-backend-go/internal/config"
	"github.com/attendhq/attendance-backend-go/internal/domain/calendar"
	"github.com/attendhq/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/attendhq/attendance-backend-go/internal/handler/http"
	"github.com/attendhq/attendance-backend-go/internal/pkg/cron"
	"github.com/attendhq/attendance-backend-go/internal/pkg/database"
	"github.com/attendhq/attendance-backend-go/internal/pkg/document"
	"github.com/attendhq/attendance-backend-go/internal/pkg/ratelimit"
	"github.com/attendhq/attendance-backend-go/internal/pkg/sse"
	"github.com/attendhq/attendance-backend-go/internal/pkg/storage"
	"github.com/attendhq/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendhq/attendance-backend-go/internal/service/attendance"
	"github.com/attendhq/attendance-backend-go/internal/service/file"
	payrollService "github.com/attendhq/attendance-backend-go/internal/service/payroll"
	reportService "github.com/attendhq/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	overrideRepo := postgresql.NewOverrideRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryRepo := postgresql.NewSalaryStructureRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	cal := calendar.New(fixtures.DeclaredHolidays())

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	renderer, err := document.NewHTMLRenderer()
	if err != nil {
		log.Fatal("Failed to initialize payslip renderer:", err)
	}

	hub := sse.NewHub()
	limiter := ratelimit.NewInterval(cfg.Batch.ItemInterval)

	fileService := file.NewFileService(fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, sessionRepo, overrideRepo, cal)
	reportSvc := reportService.NewReportService(attendanceSvc, salaryRepo, cal)
	payrollSvc := payrollService.NewPayrollService(
		payslipRepo,
		salaryRepo,
		employeeRepo,
		fileService,
		renderer,
		limiter,
		hub,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, hub)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(sessionRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.Storage.BasePath,
		attendanceHandler,
		reportHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
