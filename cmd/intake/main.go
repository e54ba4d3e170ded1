// Command intake consumes automated ND/NE measurements from kafka and reconciles them.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"outorga_monitor/internal/adapter/lock"
	"outorga_monitor/internal/adapter/messaging"
	"outorga_monitor/internal/adapter/persistence/repository"
	"outorga_monitor/internal/infrastructure/cache"
	"outorga_monitor/internal/infrastructure/database"
	"outorga_monitor/internal/infrastructure/logging"
	"outorga_monitor/internal/infrastructure/metrics"
	"outorga_monitor/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

const defaultMetricsPort = "9090"

func main() {
	log := logging.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := consumerConfigFromEnv()
	reader, err := messaging.NewKafkaReader(cfg)
	if err != nil {
		log.Fatalf("kafka reader: %v", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoConfigFromEnv())
	if err != nil {
		log.Fatalf("dynamodb: %v", err)
	}
	redisCfg, err := cache.RedisConfigFromEnv()
	if err != nil {
		log.Fatalf("redis config: %v", err)
	}
	rdb, err := cache.ConnectRedis(ctx, redisCfg)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb == nil {
		log.Warn("intake running with a process-local lock; do not scale out without REDIS_ADDR")
	}

	m := metrics.New()
	ndne := usecase.NewNDNEUseCase(repository.NewNDNERecordDynamoRepository(ddb), lock.New(rdb, redisCfg.LockTTL))
	consumer := messaging.NewNDNEIntakeConsumer(reader, ndne, cfg.Actor, m)

	srv := &http.Server{
		Addr:              ":" + getenvDefault("PORT", defaultMetricsPort),
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("metrics server: %v", err)
		}
	}()

	log.WithField("topic", cfg.Topic).Info("intake started")
	consumer.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	if rdb != nil {
		_ = rdb.Close()
	}
	log.Info("intake stopped")
}

func consumerConfigFromEnv() messaging.ConsumerConfig {
	var brokers []string
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return messaging.ConsumerConfig{
		Brokers: brokers,
		Topic:   getenvDefault("KAFKA_TOPIC", "ndne.measurements"),
		GroupID: getenvDefault("KAFKA_GROUP_ID", "outorga-ndne-intake"),
		Actor:   getenvDefault("INTAKE_ACTOR", "automated-intake"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
