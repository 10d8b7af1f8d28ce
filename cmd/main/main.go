package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"cafenate-cart/internal/app"
	"cafenate-cart/internal/catalog"
	"cafenate-cart/internal/checkout"
	handlersCart "cafenate-cart/internal/handlers/shopping_cart"
	"cafenate-cart/internal/kafka"
	"cafenate-cart/internal/middleware"
	"cafenate-cart/internal/shopping_cart"
)

const (
	cfgPath = "config/config.yaml"
)

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	menu, err := catalog.Load(c.CatalogPath, logger)
	if err != nil {
		logger.Fatalf("error to loading catalog: %v", err)
	}

	// init kafka
	producer := kafka.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Warnf("error to close kafka producer: %v", err)
		}
	}()

	// одна корзина на процесс
	store := shopping_cart.NewStore(logger)
	unsubscribe := middleware.TrackCart(store)
	defer unsubscribe()

	checkoutService := checkout.NewService(logger, producer)
	cartHandlers := handlersCart.NewShoppingCartHandler(logger, menu, checkoutService, c.Currency, c.CheckoutTimeout)

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CartProvider(store))

	api.HandleFunc("/catalog", cartHandlers.GetCatalog).Methods("GET")
	api.HandleFunc("/cart", cartHandlers.GetCart).Methods("GET")
	api.HandleFunc("/cart", cartHandlers.ClearCart).Methods("DELETE")
	api.HandleFunc("/cart/items", cartHandlers.AddToShoppingCart).Methods("POST")
	api.HandleFunc("/cart/items/{id:[0-9]+}", cartHandlers.UpdateQuantity).Methods("PATCH")
	api.HandleFunc("/checkout", cartHandlers.Checkout).Methods("POST")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("can't start server: %v", err)
	}
}
