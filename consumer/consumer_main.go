package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contractify/contractify-backend/config"
	"github.com/contractify/contractify-backend/consumer/worker"
	infraPkg "github.com/contractify/contractify-backend/infra"
	"github.com/contractify/contractify-backend/repository"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cacheTTL := time.Duration(cfg.EnvConfig.AICache.TTLSeconds) * time.Second
	aiConsumer := worker.NewAIConsumer(infra.RabbitMQ.Channel, infra, repo, cacheTTL)
	if err := aiConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start AI consumer: %v", err)
		log.Fatalf("Failed to start AI consumer: %v", err)
	}

	pdfConsumer := worker.NewPDFConsumer(infra.RabbitMQ.Channel, infra, repo)
	if err := pdfConsumer.Start(ctx); err != nil {
		infra.Logger.ErrorWithContextf(ctx, err, "Failed to start PDF consumer: %v", err)
		log.Fatalf("Failed to start PDF consumer: %v", err)
	}

	watchdog := worker.NewWatchdog(infra, repo,
		time.Duration(cfg.EnvConfig.Jobs.TimeoutSeconds)*time.Second,
		time.Duration(cfg.EnvConfig.Jobs.WatchdogSeconds)*time.Second)
	watchdog.Start(ctx)

	reminders := worker.NewReminderDispatcher(infra, repo,
		time.Duration(cfg.EnvConfig.Notifications.ReminderSweepSeconds)*time.Second)
	reminders.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	infra.Logger.InfoWithContextf(ctx, "Shutting down consumer...")
	cancel()

	infra.Logger.InfoWithContextf(ctx, "Consumer exited properly")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	infra.Logger.Shutdown(shutdownCtx)
}
