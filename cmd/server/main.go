package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sstarkov/styleshop/internal/config"
	"github.com/sstarkov/styleshop/internal/es"
	"github.com/sstarkov/styleshop/internal/handlers"
	"github.com/sstarkov/styleshop/internal/httpserver"
	"github.com/sstarkov/styleshop/internal/logging"
	"github.com/sstarkov/styleshop/internal/mykafka"
	"github.com/sstarkov/styleshop/internal/seed"
)

const productIndex = "products"

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		logger.Error("db init failed", "err", err)
		os.Exit(1)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	productHandler := &handlers.ProductHandler{DB: db, Index: productIndex}
	if configuration.ES_URL != "" {
		client, err := es.NewClient(configuration)
		if err != nil {
			logger.Error("elasticsearch init failed", "err", err)
			os.Exit(1)
		}
		productHandler.ES = client
	}

	ctx := logging.IntoContext(context.Background(), logger)
	if err := seed.Products(ctx, db, productHandler.ES, productIndex); err != nil {
		logger.Error("seeding failed", "err", err)
		os.Exit(1)
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{configuration.FRONTEND_ORIGIN},
	}))

	deps := httpserver.Deps{
		DB:             db,
		AuthHandler:    &handlers.AuthHandler{DB: db, JWTSecret: jwtSecret, Producer: prod},
		ProductHandler: productHandler,
		OrderHandler:   &handlers.OrderHandler{DB: db, Producer: prod},
		JWTSecret:      jwtSecret,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "err", err)
		}
	} else {
		logger.Error("db() error", "err", err)
	}

	if err := prod.Close(); err != nil {
		logger.Error("kafka close error", "err", err)
	}

	logger.Info("shutdown complete")
}
