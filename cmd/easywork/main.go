package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/candrasdkd/easywork/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("❌😵‍💫 easywork server stopped with error: %v", err)
	}
}
