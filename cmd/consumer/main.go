package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"go-storefront-api/internal/app"
)

func main() {
	_ = godotenv.Load()
	log.Println("[CONSUMER] Starting cart event consumer...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := app.RunConsumer(ctx); err != nil {
			log.Fatalf("[CONSUMER] %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	time.Sleep(1 * time.Second)
	log.Println("[CONSUMER] Stopped")
}
