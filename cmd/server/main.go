package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/clock"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/config"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/gateway"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/infrastructure/logger"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/infrastructure/rabbitmq"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/ingest"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/menu"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/order"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/retell"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Environment)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Retell.AgentID == "" {
		zapLogger.Warn("RETELL_AGENT_ID is not set; voice calls will fail")
	}

	clk := clock.NewSystem()
	catalog := menu.Default()

	var submissionGateway order.SubmissionGateway = gateway.NewLogGateway(zapLogger)
	if cfg.Gateway.AMQPURL != "" {
		conn, err := rabbitmq.Connect(cfg.Gateway.AMQPURL)
		if err != nil {
			zapLogger.Fatal("connecting to amqp broker", zap.Error(err))
		}
		defer conn.Close()

		submissionGateway, err = gateway.NewAMQPGateway(conn, cfg.Gateway.Exchange, cfg.Gateway.RoutingKey, zapLogger)
		if err != nil {
			zapLogger.Fatal("setting up amqp gateway", zap.Error(err))
		}
		zapLogger.Info("amqp gateway enabled", zap.String("exchange", cfg.Gateway.Exchange))
	}

	builder := order.NewBuilder(catalog, clk, cfg.Order.LeadTime)
	store := order.NewStore()
	orderService := order.NewService(builder, store, submissionGateway, clk, zapLogger)

	orderCtrl := order.NewController(orderService, zapLogger)
	menuCtrl := menu.NewController(catalog, zapLogger)

	retellClient := retell.NewClient(cfg.Retell, clk, zapLogger)
	ingestService := ingest.NewService(orderService, zapLogger)
	retellCtrl := retell.NewController(retellClient, ingestService, zapLogger)

	health := server.NewHealthController(cfg.Environment)
	router := server.NewRouter(retellCtrl, orderCtrl, menuCtrl, health, cfg.CORS.Origin, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
