package app

import (
	"os"

	"go-outpass/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BuildApp wires the leave desk: the gateway to the record store, the reason
// catalog, sessions, and the leave modules. Redis and Kafka are optional
// tiers; the desk runs without them.
func BuildApp(router *gin.Engine) error {
	baseURL := os.Getenv("RECORD_STORE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		rdb = client
	} else {
		zap.L().Info("REDIS_ADDR not set, catalog warm tier disabled")
	}

	var writer *kafkago.Writer
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		writer = &kafkago.Writer{
			Addr:                   kafkago.TCP(broker),
			Balancer:               &kafkago.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
	} else {
		zap.L().Info("KAFKA_BROKER not set, lifecycle events disabled")
	}

	return registerModules(router, baseURL, rdb, writer)
}
