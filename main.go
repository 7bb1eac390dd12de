package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alanya-store/internal/order"
	"alanya-store/internal/pkg"
	"alanya-store/internal/pkg/config"
	"alanya-store/internal/telegram"
	"alanya-store/internal/web"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	var notifier telegram.Notifier
	if cfg.Telegram.Token != "" {
		notifier, err = telegram.NewNotifier(&cfg.Telegram)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		slog.Warn("Telegram token not configured, order intake will reject orders")
	}

	submitter := order.NewDefaultSubmitter(cfg.Order.SubmitURL, pkg.HTTPClient)

	server := web.NewServer(cfg, submitter, notifier)
	server.Start(ctx)

	<-ctx.Done()
	slog.Info("Shutting down...")
	ctx, shutdown := context.WithTimeout(context.Background(), time.Second*15)
	defer shutdown()

	if err := server.Stop(ctx); err != nil {
		log.Fatal(err)
	}
}
