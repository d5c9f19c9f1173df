package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/kanchiweaves/storefront.api/config"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/handlers"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/phonepe"
	"github.com/kanchiweaves/storefront.api/reconcile"
	"github.com/kanchiweaves/storefront.api/service"
	"github.com/kanchiweaves/storefront.api/shiprocket"
)

func main() {
	log.Namespace = "storefront.api"

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file loaded, using the environment")
	}

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	store, err := dao.NewDAO(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	phonePeClient, err := phonepe.NewClient(phonepe.Config{
		MerchantID: cfg.PhonePeMerchantID,
		SaltKey:    cfg.PhonePeSaltKey,
		SaltIndex:  cfg.PhonePeSaltIndex,
		Mode:       cfg.PhonePeMode,
		HostURL:    cfg.HostURL,
	})
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	phonePe := &service.PhonePeProvider{Client: phonePeClient}

	providers := service.PaymentProviders{models.PaymentMethodPhonePe: phonePe}
	if cfg.PaypalClientID != "" {
		paypalClient, err := service.GetPayPalClient(*cfg)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		paypalProvider, err := service.NewPayPalProvider(paypalClient, *cfg)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		providers[models.PaymentMethodPayPal] = paypalProvider
	} else {
		log.Info("paypal is not configured, international payments are disabled")
	}

	var tokens shiprocket.TokenStore
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		tokens = shiprocket.NewRedisTokenStore(redis.NewClient(opts), "")
	}
	shiprocketClient := shiprocket.NewClient(shiprocket.Config{
		Email:    cfg.ShiprocketEmail,
		Password: cfg.ShiprocketPassword,
		BaseURL:  cfg.ShiprocketBaseURL,
	}, tokens)

	payments := service.NewPaymentService(store, *cfg, providers, phonePe)
	services := handlers.Services{
		Payments:  payments,
		Refunds:   service.NewRefundService(store, providers, phonePe, cfg.PhonePeVerifyCallbacks),
		Shipments: &service.ShipmentService{DAO: store, Client: shiprocketClient, Config: *cfg},
		Users:     service.NewUserService(store),
		Contact:   &service.ContactService{DAO: store},
	}

	if err := handlers.StartOrderProducer(*cfg); err != nil {
		log.Error(err)
		os.Exit(1)
	}
	defer handlers.StopOrderProducer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := mux.NewRouter()
	handlers.Register(ctx, router, *cfg, services)

	worker := &reconcile.Worker{
		Payments:  payments,
		Interval:  time.Duration(cfg.ReconcileIntervalSeconds) * time.Second,
		OnSettled: handlers.PublishOrderSettled,
	}
	go worker.Run(ctx)

	server := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error(err)
		}
	}()

	log.Info("Starting storefront.api service", log.Data{"bind_addr": cfg.BindAddr, "store_backend": cfg.StoreBackend})
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	log.Trace("Exiting storefront.api service")
}
