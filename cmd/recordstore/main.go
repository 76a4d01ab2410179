package main

import (
	"os"
	"time"

	"go-outpass/internal/bootstrap"
	"go-outpass/internal/recordstore"
	"go-outpass/internal/shared/apperror"
	"go-outpass/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := recordstore.Migrate(gormDB); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	if err := recordstore.SeedReasons(gormDB); err != nil {
		logger.Fatal("seed reasons failed", zap.Error(err))
	}

	db, err := gormDB.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}

	repo := recordstore.NewRepository(gormDB)
	service := recordstore.NewService(db, repo)
	handler := recordstore.NewHandler(service)

	r := gin.Default()
	recordstore.RegisterRoutes(r, handler)

	auditLogger := bootstrap.NewStdoutAuditLogger()
	port := os.Getenv("RECORD_STORE_PORT")
	if port == "" {
		port = "4000"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		auditLogger,
	)
}
