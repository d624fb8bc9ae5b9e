package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/robfig/cron/v3"

	"github.com/bauapp-dev/bauapp-backend-go/internal/config"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/issue"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/timesheet"
	"github.com/bauapp-dev/bauapp-backend-go/internal/fixtures"
	appHTTP "github.com/bauapp-dev/bauapp-backend-go/internal/handler/http"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/database"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/jwt"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/sse"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/storage"
	"github.com/bauapp-dev/bauapp-backend-go/internal/repository/postgresql"
	authService "github.com/bauapp-dev/bauapp-backend-go/internal/service/auth"
	dashboardService "github.com/bauapp-dev/bauapp-backend-go/internal/service/dashboard"
	exportService "github.com/bauapp-dev/bauapp-backend-go/internal/service/export"
	"github.com/bauapp-dev/bauapp-backend-go/internal/service/file"
	projectService "github.com/bauapp-dev/bauapp-backend-go/internal/service/project"
	reportService "github.com/bauapp-dev/bauapp-backend-go/internal/service/report"
	timesheetService "github.com/bauapp-dev/bauapp-backend-go/internal/service/timesheet"
	userService "github.com/bauapp-dev/bauapp-backend-go/internal/service/user"
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

	ctx := context.Background()
	if err := fixtures.Migrate(ctx, db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	if cfg.App.Env != "production" {
		if err := fixtures.Seed(ctx, db); err != nil {
			log.Fatal("Failed to seed demo data: ", err)
		}
	}

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	classifier := issue.Default()
	if cfg.Issues.RulesFile != "" {
		classifier, err = issue.LoadFile(cfg.Issues.RulesFile)
		if err != nil {
			log.Fatal("Failed to load issue rules: ", err)
		}
	}

	hub := sse.NewHub()
	snapshots := timesheet.NewStore()

	fileSvc := file.NewService(fileStorage, slog.Default())
	authSvc := authService.NewAuthService(userRepo, jwtService, fileStorage)
	userSvc := userService.NewUserService(userRepo, fileSvc, fileStorage)
	projectSvc := projectService.NewProjectService(db, projectRepo, reportRepo, fileSvc)
	reportSvc := reportService.NewReportService(db, reportRepo, projectRepo, userRepo, fileSvc, hub)
	timesheetSvc := timesheetService.NewTimesheetService(reportRepo)
	dashboardSvc := dashboardService.NewDashboardService(reportRepo, projectRepo, classifier, snapshots, fileSvc, slog.Default())
	exportSvc := exportService.NewExportService(projectRepo, reportRepo, fileStorage, slog.Default())

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc, exportSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, exportSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	eventsHandler := appHTTP.NewEventsHandler(jwtService, hub)

	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 5m", func() {
		if err := dashboardSvc.Refresh(context.Background()); err != nil {
			slog.Error("Timesheet snapshot refresh failed", "error", err)
		}
	}); err != nil {
		log.Fatal("Failed to schedule snapshot refresh: ", err)
	}
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		jobCtx := context.Background()
		referenced, err := reportRepo.ListAllImagePaths(jobCtx)
		if err != nil {
			slog.Error("Upload cleanup failed", "error", err)
			return
		}
		removed, err := fileSvc.CleanupOrphans(jobCtx, referenced)
		if err != nil {
			slog.Error("Upload cleanup failed", "error", err)
			return
		}
		slog.Info("Upload cleanup finished", "removed", removed)
	}); err != nil {
		log.Fatal("Failed to schedule upload cleanup: ", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		userHandler,
		projectHandler,
		reportHandler,
		timesheetHandler,
		dashboardHandler,
		eventsHandler,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
