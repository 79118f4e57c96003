package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantgrid/trading-engine/internal/rpc"
	"github.com/quantgrid/trading-engine/internal/usecase/orderbook"
	"github.com/quantgrid/trading-engine/internal/usecase/tradepublisher"
	"github.com/quantgrid/trading-engine/pkg/config"
	"github.com/quantgrid/trading-engine/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.NewLogger(logger.Level(cfg.App.LogLevel))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logg.Sync()

	bookOpts := orderbook.DefaultOptions()
	bookOpts.ExpiryHour = cfg.Book.ExpiryHour
	book := orderbook.New(logg, bookOpts)
	defer book.Close()

	var publisher rpc.TradePublisher
	if cfg.TradeFeed.Enabled {
		kafkaPublisher := tradepublisher.New(cfg.TradeFeed, logg)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	service := rpc.NewService(book, publisher, logg)
	server := rpc.NewGrpcServer(cfg.App, logg, service)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	logg.Info("trading engine started",
		logger.Field{Key: "name", Value: cfg.App.Name},
		logger.Field{Key: "environment", Value: cfg.App.Environment},
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logg.Info("shutting down",
			logger.Field{Key: "signal", Value: sig.String()},
		)
		server.Stop()
		<-errCh
	case err := <-errCh:
		if err != nil {
			logg.Error(err)
		}
	}
}
