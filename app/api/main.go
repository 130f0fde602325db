package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/farbarter/goapi/app/internal/resolver"
	"github.com/farbarter/goapi/base/config"
	"github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	bValidator "github.com/farbarter/goapi/base/validator"
	"github.com/farbarter/goapi/domain"
	mmiddleware "github.com/farbarter/goapi/middleware"
	"github.com/farbarter/goapi/service/daimo"
	hc_delivery "github.com/farbarter/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/farbarter/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/farbarter/goapi/stores/healthcheck/usecase"
	listing_delivery "github.com/farbarter/goapi/stores/listing/delivery/http"
	purchase_usecase "github.com/farbarter/goapi/stores/purchase/usecase"
	sale_delivery "github.com/farbarter/goapi/stores/sale/delivery/http"
	sale_usecase "github.com/farbarter/goapi/stores/sale/usecase"
)

var configPath = pflag.String("config", config.DefaultPath, "path of the yaml config")

func init() {
	pflag.Parse()
	if err := config.Load(*configPath); err != nil {
		panic(err)
	}
}

func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()

	// init chain service and the listing resolution stack
	context.Info("init listing resolver")
	stack, err := resolver.New(context)
	if err != nil {
		context.WithField("err", err).Panic("resolver.New failed")
	}
	defer stack.Chain.Close()

	daimoClient := daimo.NewClient(&daimo.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("daimo.timeout"),
		BaseUrl:    viper.GetString("daimo.baseUrl"),
	})

	// construct repository, usecase and delivery
	var purchaseFn domain.PurchaseFunc
	if viper.GetBool("purchase.enabled") {
		purchaseFn = purchase_usecase.LogOnlyPurchase
	}
	purchaseUseCase := purchase_usecase.NewPurchaseUseCase(purchaseFn)
	saleUseCase := sale_usecase.NewSaleUseCase(&sale_usecase.SaleUseCaseCfg{
		Daimo: daimoClient,
	})
	hcUseCase := hc_usecase.New(hc_repo.New(stack.Chain))

	hc_delivery.New(e, hcUseCase)
	listing_delivery.New(e, stack.Listing, purchaseUseCase)
	sale_delivery.New(e, saleUseCase)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
