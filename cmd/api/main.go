package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gig_escrow/internal/adapter/http/handlers"
	"gig_escrow/internal/adapter/http/middleware"
	"gig_escrow/internal/adapter/http/routes"
	"gig_escrow/internal/adapter/persistence/repository"
	"gig_escrow/internal/infrastructure/config"
	"gig_escrow/internal/infrastructure/database"
	"gig_escrow/internal/infrastructure/notifications"
	"gig_escrow/internal/infrastructure/payments"
	"gig_escrow/internal/usecase"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           Gig Escrow API
// @version         1.0
// @description     Escrow-backed hire workflow: hire requests, payment orders and checkout verification.

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}
	rdb := database.ConnectRedis(ctx, cfg)
	defer rdb.Close()

	hireRepo := repository.NewHireRequestDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	directory := repository.NewDirectoryDynamoRepository(ddb)

	gateway, err := payments.NewGateway(cfg)
	if err != nil {
		// Order creation and verification answer with a gateway error until configured.
		log.Printf("Payment gateway not configured: %v", err)
	}

	dispatcher := notifications.NewDispatcher(notifications.NewRedisPublisher(rdb), notifications.Options{
		QueueSize:    cfg.NotifyQueueSize,
		Workers:      cfg.NotifyWorkers,
		MaxRetries:   cfg.NotifyMaxRetries,
		RetryBackoff: cfg.NotifyRetryBackoff,
	})
	dispatcher.Start()
	defer dispatcher.Stop()
	payouts := notifications.NewPayoutQueue(rdb, cfg.PayoutQueueKey)

	hireUseCase := usecase.NewHireRequestUseCase(hireRepo, directory, dispatcher, payouts).
		WithClock(time.Now, cfg.Location)
	paymentUseCase := usecase.NewPaymentUseCase(hireRepo, paymentRepo, hireUseCase, gateway).
		WithCurrency(cfg.Currency).
		WithGatewayTimeout(cfg.PaymentGatewayTimeout)

	router := routes.NewRouter(routes.Handlers{
		HireRequests: handlers.NewHireRequestHandler(hireUseCase),
		Payments:     handlers.NewPaymentHandler(paymentUseCase),
		Auth:         middleware.Auth(cfg.JWTSecret, directory),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Listening on :%s provider=%s", cfg.Port, cfg.PaymentProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
