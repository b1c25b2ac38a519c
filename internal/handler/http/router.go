package http

import (
	"log/slog"

	"github.com/cmlabs-hris/hris-workflow-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Salary     SalaryHandler
	Review     ReviewHandler
	Attendance AttendanceHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-Deleted-Count"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/top_performers", h.Review.TopPerformers)
			r.Delete("/delete_all_attendance", h.Attendance.DeleteAllAttendance)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.ListEmployees)
				r.Post("/", h.Employee.CreateEmployee)
				r.Get("/archived", h.Employee.ListArchived)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.GetEmployee)
					r.Put("/", h.Employee.UpdateEmployee)
					r.Delete("/", h.Employee.DeleteEmployee)

					// lifecycle
					r.Post("/deactivate", h.Employee.Deactivate)
					r.Post("/restore", h.Employee.Restore)
					r.Patch("/archive", h.Employee.Archive)
					r.Patch("/unarchive", h.Employee.Unarchive)
					r.Delete("/permanent", h.Employee.PermanentlyDelete)
					r.Patch("/request_department_transfer", h.Employee.RequestDepartmentTransfer)
					r.Patch("/approve_transfer", h.Employee.ApproveTransfer)
					r.Get("/summary", h.Employee.Summary)

					// salary ledger
					r.Get("/salary_history", h.Salary.GetHistory)
					r.Patch("/adjust_salary", h.Salary.AdjustSalary)

					// performance
					r.Get("/performance_reviews", h.Review.ListReviews)
					r.Post("/performance_reviews", h.Review.SubmitReview)
					r.Delete("/remove_performance_record", h.Review.RemoveReview)

					// attendance
					r.Get("/attendance", h.Attendance.ListAttendance)
					r.Post("/check_in", h.Attendance.CheckIn)
					r.Post("/check_out", h.Attendance.CheckOut)
					r.Get("/overtime_hours", h.Attendance.OvertimeHours)
					r.Get("/leave_history", h.Attendance.LeaveHistory)
					r.Post("/request_leave", h.Attendance.RequestLeave)
					r.Patch("/approve_leave", h.Attendance.ApproveLeave)
					r.Delete("/delete_attendance", h.Attendance.DeleteAttendance)
				})
			})
		})
	})
	return r
}
