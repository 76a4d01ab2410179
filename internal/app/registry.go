package app

import (
	"time"

	"go-outpass/internal/auth"
	"go-outpass/internal/catalog"
	"go-outpass/internal/gateway"
	"go-outpass/internal/messaging/kafka/producer"
	"go-outpass/internal/middleware"
	"go-outpass/internal/outing"
	"go-outpass/internal/session"
	"go-outpass/internal/stay"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

func registerModules(
	router *gin.Engine,
	recordStoreURL string,
	rdb *redis.Client,
	writer *kafkago.Writer,
) error {
	router.Use(middleware.RequestID())

	// --- Infrastructure ---
	gw := gateway.NewClient(recordStoreURL)
	sessions := session.NewManager()
	reasons := catalog.NewService(gw, rdb, 10*time.Minute)
	publisher := producer.NewPublisher(writer)

	// --- Services ---
	authService := auth.NewService(gw, sessions)
	outingService := outing.NewService(gw, reasons, publisher)
	stayService := stay.NewService(gw, reasons, publisher)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	outingHandler := outing.NewHandler(outingService)
	stayHandler := stay.NewHandler(stayService)

	// --- Routes ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, sessions)
		outing.RegisterRoutes(api, outingHandler, sessions)
		stay.RegisterRoutes(api, stayHandler, sessions)
	}

	return nil
}
