package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"leadflow.backend/internal/config"
	"leadflow.backend/internal/infrastructure/models"
	"leadflow.backend/internal/infrastructure/repositories"
	"leadflow.backend/internal/interfaces/http/handlers"
	"leadflow.backend/internal/interfaces/http/middleware"
	"leadflow.backend/internal/usecases"
	"leadflow.backend/pkg/jwt"
	"leadflow.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(cfg *config.Config) (*gorm.DB, error) {
		if cfg.Database.Driver == "sqlite" {
			return gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
		}
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.Database.URL(),
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error {
		srv := &http.Server{Addr: ":" + port, Handler: r}

		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			logger.Info(context.Background(), "Shutting down server")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
	getStdDB = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Printf("✅ Connected to %s via GORM", cfg.Database.Driver)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Lead{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	leadUsecase := usecases.NewLeadUsecase(leadRepo)
	analyticsUsecase := usecases.NewAnalyticsUsecase(leadRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	leadHandler := handlers.NewLeadHandler(leadUsecase, analyticsUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:    authHandler,
		leadHandler:    leadHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
	})

	// Start server
	log.Printf("🚀 LeadFlow Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
