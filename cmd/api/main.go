package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gopal-construction/worksite-backend-go/internal/config"
	appHTTP "github.com/gopal-construction/worksite-backend-go/internal/handler/http"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/database"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/jwt"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/snapshot"
	"github.com/gopal-construction/worksite-backend-go/internal/pkg/storage"
	"github.com/gopal-construction/worksite-backend-go/internal/repository/postgresql"
	attendanceService "github.com/gopal-construction/worksite-backend-go/internal/service/attendance"
	serviceAuth "github.com/gopal-construction/worksite-backend-go/internal/service/auth"
	reportService "github.com/gopal-construction/worksite-backend-go/internal/service/report"
	workerService "github.com/gopal-construction/worksite-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	}))

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

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

	snapshotStore, err := snapshot.NewFileStore(cfg.Snapshot.Dir)
	if err != nil {
		log.Fatal("Failed to initialize snapshot store:", err)
	}

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, logger)
	workerSvc := workerService.NewWorkerService(workerRepo, logger)
	attendanceSvc := attendanceService.NewAttendanceService(snapshotStore, workerRepo, logger)
	reportSvc := reportService.NewReportService(attendanceSvc, snapshotStore, workerRepo, userRepo, fileStorage, logger)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc, attendanceSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		cfg.Storage.BasePath,
		authHandler,
		workerHandler,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
