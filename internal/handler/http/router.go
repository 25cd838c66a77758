package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workdesk/workdesk-backend-go/internal/handler/http/middleware"
	"github.com/workdesk/workdesk-backend-go/internal/pkg/jwt"
)

func NewRouter(
	logger *slog.Logger,
	jwtService jwt.Service,
	frontendURL string,
	authHandler AuthHandler,
	workLogHandler WorkLogHandler,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	overtimeHandler OvertimeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/login/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
			})
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/worklogs", func(r chi.Router) {
				r.Post("/clock-in", workLogHandler.ClockIn)
				r.Post("/clock-out", workLogHandler.ClockOut)
				r.Get("/", workLogHandler.ListWeek)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", workLogHandler.UpdateWorkRecord)
				})
			})

			r.Route("/leave-schedules", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/my", leaveHandler.ListMy)
				r.Post("/{id}/cancel", leaveHandler.Cancel)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", leaveHandler.ListPending)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.ListMonth)
				r.Get("/{date}", holidayHandler.Lookup)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", holidayHandler.Upsert)
					r.Delete("/{date}", holidayHandler.Delete)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", overtimeHandler.Create)
				r.Get("/", overtimeHandler.List)
				r.Post("/{id}/cancel", overtimeHandler.Cancel)
				r.Post("/{id}/reapply", overtimeHandler.Reapply)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", overtimeHandler.Approve)
					r.Post("/{id}/compensate", overtimeHandler.Compensate)
					r.Post("/{id}/reject", overtimeHandler.Reject)
					r.Post("/bulk-approve", overtimeHandler.BulkApprove)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/weekly", reportHandler.Weekly)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/latecomers", reportHandler.MonthlyLatecomers)
					r.Get("/export/work-time", reportHandler.ExportWorkTime)
					r.Get("/export/late-time", reportHandler.ExportLateTime)
				})
			})
		})
	})

	return r
}
