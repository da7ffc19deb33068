package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Apurer/user-order-services/internal/app/userapi"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := userapi.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("user service exited: %v", err)
	}
}
