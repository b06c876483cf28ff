package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wetrack-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/wetrack-hr/attendance-backend-go/internal/handler/http"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/clock"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/database"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/wetrack-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/wetrack-hr/attendance-backend-go/internal/service/attendance"
	reportService "github.com/wetrack-hr/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	loc := cfg.Location()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	attendanceLogRepo := postgresql.NewAttendanceLogRepository(db)
	reportRepo := postgresql.NewReportRepository(db, loc)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		attendanceLogRepo,
		employeeRepo,
		clock.System(),
		loc,
	)
	reportSvc := reportService.NewReportService(
		reportRepo,
		employeeRepo,
		clock.System(),
		loc,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, attendanceSvc)

	router := appHTTP.NewRouter(cfg, jwtService, attendanceHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
