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

	"github.com/cmlabs-hris/hris-workflow-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-workflow-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-workflow-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-workflow-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-workflow-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-workflow-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/hris-workflow-go/internal/service/employee"
	reviewService "github.com/cmlabs-hris/hris-workflow-go/internal/service/review"
	salaryService "github.com/cmlabs-hris/hris-workflow-go/internal/service/salary"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/sync/errgroup"
)

const (
	appName    = "hris-workflow"
	appVersion = "v1.0.0"

	shutdownTimeout = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("version", appVersion),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryRepo := postgresql.NewSalaryHistoryRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	if err != nil {
		return err
	}

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, salaryRepo, reviewRepo, attendanceRepo)
	salarySvc := salaryService.NewSalaryService(db, employeeRepo, salaryRepo)
	reviewSvc := reviewService.NewReviewService(employeeRepo, reviewRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, employeeRepo, attendanceRepo, loc)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       cfg.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	}, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Review:     appHTTP.NewReviewHandler(reviewSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server listening", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
