package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Apurer/user-order-services/internal/app/orderapi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := orderapi.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("order service exited: %v", err)
	}
}
