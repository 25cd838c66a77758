package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"

	"github.com/workdesk/workdesk-backend-go/internal/config"
	appHTTP "github.com/workdesk/workdesk-backend-go/internal/handler/http"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/cron"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/database"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/jwt"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/oauth"
	"github.com/workdesk/workdesk-backend-go/internal/repository/postgresql"
	authService "github.com/workdesk/workdesk-backend-go/internal/service/auth"
	exportService "github.com/workdesk/workdesk-backend-go/internal/service/export"
	holidayService "github.com/workdesk/workdesk-backend-go/internal/service/holiday"
	leaveService "github.com/workdesk/workdesk-backend-go/internal/service/leave"
	overtimeService "github.com/workdesk/workdesk-backend-go/internal/service/overtime"
	reportService "github.com/workdesk/workdesk-backend-go/internal/service/report"
	worklogService "github.com/workdesk/workdesk-backend-go/internal/service/worklog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workdesk-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Pool.Close()

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	workLogRepo := postgresql.NewWorkLogRepository(db)
	leaveRepo := postgresql.NewLeaveScheduleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	workLogSvc := worklogService.NewWorkLogService(workLogRepo)
	leaveSvc := leaveService.NewLeaveScheduleService(leaveRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, holidayRepo)
	reportSvc := reportService.NewReportService(workLogRepo, leaveRepo, holidayRepo, logger)
	exportSvc := exportService.NewExportService(workLogRepo, reportSvc)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	workLogHandler := appHTTP.NewWorkLogHandler(workLogSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, exportSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("close-dangling-sessions", time.Hour, cron.CloseDanglingSessions(workLogRepo, cfg.Attendance.DayEnd))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		logger,
		jwtSvc,
		cfg.App.FrontendURL,
		authHandler,
		workLogHandler,
		leaveHandler,
		holidayHandler,
		overtimeHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		slog.Info("Server running", "addr", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	_ = server.Close()
}
