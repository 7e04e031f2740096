package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffledger/attendance-backend-go/internal/config"
	appHTTP "github.com/staffledger/attendance-backend-go/internal/handler/http"
	"github.com/staffledger/attendance-backend-go/internal/pkg/cron"
	"github.com/staffledger/attendance-backend-go/internal/pkg/database"
	"github.com/staffledger/attendance-backend-go/internal/pkg/email"
	"github.com/staffledger/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffledger/attendance-backend-go/internal/pkg/oauth"
	"github.com/staffledger/attendance-backend-go/internal/pkg/sse"
	"github.com/staffledger/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffledger/attendance-backend-go/internal/service/attendance"
	authService "github.com/staffledger/attendance-backend-go/internal/service/auth"
	departmentService "github.com/staffledger/attendance-backend-go/internal/service/department"
	employeeService "github.com/staffledger/attendance-backend-go/internal/service/employee"
	leaveService "github.com/staffledger/attendance-backend-go/internal/service/leave"
	meetingService "github.com/staffledger/attendance-backend-go/internal/service/meeting"
	notificationService "github.com/staffledger/attendance-backend-go/internal/service/notification"
	projectService "github.com/staffledger/attendance-backend-go/internal/service/project"
	reportService "github.com/staffledger/attendance-backend-go/internal/service/report"
	shiftService "github.com/staffledger/attendance-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns:     cfg.Database.MaxConns,
		MinConns:     cfg.Database.MinConns,
		ConnIdleTime: cfg.Database.ConnIdleTime,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	projectMemberRepo := postgresql.NewProjectMemberRepository(db)
	meetingSeriesRepo := postgresql.NewMeetingSeriesRepository(db)
	meetingInstanceRepo := postgresql.NewMeetingInstanceRepository(db)
	meetingAttendeeRepo := postgresql.NewMeetingAttendeeRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	reportRepo := postgresql.NewReportRepository()

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		fmt.Println("Error initializing email service:", err)
		return
	}

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, userRepo, emailSvc, hub)

	authSvc := authService.NewAuthService(userRepo, employeeRepo, refreshTokenRepo, jwtService, googleService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, shiftRepo, notificationSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, attendanceRepo, employeeRepo, userRepo, notificationSvc, emailSvc)
	projectSvc := projectService.NewProjectService(projectRepo, projectMemberRepo, employeeRepo)
	meetingSvc := meetingService.NewMeetingService(db, meetingSeriesRepo, meetingInstanceRepo, meetingAttendeeRepo, employeeRepo, notificationSvc)
	reportSvc := reportService.NewReportService(db, reportRepo)

	handlers := appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Department:   appHTTP.NewDepartmentHandler(departmentSvc),
		Shift:        appHTTP.NewShiftHandler(shiftSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Project:      appHTTP.NewProjectHandler(projectSvc),
		Meeting:      appHTTP.NewMeetingHandler(meetingSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, jwtService),
		Report:       appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, leaveRepo, userRepo, notificationSvc).RegisterJobs(scheduler)
	cron.NewMeetingJobs(meetingInstanceRepo, meetingAttendeeRepo, employeeRepo, notificationSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}

	scheduler.Stop()
	notificationSvc.Stop()
}
