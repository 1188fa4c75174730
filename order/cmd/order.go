package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/fitin/storefront/internal/config"
	"github.com/fitin/storefront/internal/constants"
	"github.com/fitin/storefront/internal/infra"
	"github.com/fitin/storefront/internal/log"
	"github.com/fitin/storefront/internal/middleware"
	inOtel "github.com/fitin/storefront/internal/otel"
	"github.com/fitin/storefront/internal/repository"
	"github.com/fitin/storefront/notification/pkg/mailer"
	"github.com/fitin/storefront/order/internal/controller"
	orderOtel "github.com/fitin/storefront/order/internal/otel"
	"github.com/fitin/storefront/order/internal/service"
)

func RunOrderService(c context.Context) {
	cfg := config.InitConfig(c, constants.APP_ORDER_SERVICE)

	logger := log.InitLogger(
		fmt.Sprintf("/var/log/%s.log", constants.APP_ORDER_SERVICE),
		cfg.Application.Env,
	).
		With().
		Str(log.KeyAppName, constants.APP_ORDER_SERVICE).
		Str(log.KeyTag, "main RunOrderService").
		Logger()

	c = logger.WithContext(c)
	c, span := orderOtel.Tracer.Start(c, "RunOrderService")
	defer span.End()

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	shutdownFuncs, err := inOtel.InitOtelSdk(c, constants.APP_ORDER_SERVICE, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("initialized otel sdk")
	defer func() {
		logger.Info().Msg("shutting down otel")
		if err := inOtel.ShutdownOtel(c, shutdownFuncs); err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown otel")
	}()

	logger = logger.With().Str(log.KeyProcess, "initializing database").Logger()
	logger.Info().Msg("initializing database")
	c = logger.WithContext(c)
	db := infra.NewDatabaseClient(c, cfg.Database)
	logger.Info().Msg("initialized database")
	defer func() {
		logger := logger.With().Str(log.KeyProcess, "shutting down database connection").Logger()
		logger.Info().Msg("shutting down database connection")
		db.Close()
		logger.Info().Msg("shutdown database connection")
	}()

	logger = logger.With().Str(log.KeyProcess, "initializing orderService").Logger()
	logger.Info().Msg("initializing orderService")
	queries := repository.New(db)
	orderService := service.NewOrderService(db, queries, mailer.NewMailer(cfg.Smtp))
	logger.Info().Msg("initialized orderService")

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.StrictSlash(true)
	router.Use(
		otelmux.Middleware(constants.APP_ORDER_SERVICE),
		middleware.Logging,
		middleware.RecoverPanic,
	)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	logger.Info().Msg("initialized router")

	logger = logger.With().Str(log.KeyProcess, "attach order controller").Logger()
	logger.Info().Msg("attaching order controller")
	controller.AttachOrderController(router, &orderService, cfg.Application.SecretKey)
	logger.Info().Msg("attached order controller")

	logger = logger.With().Str(log.KeyProcess, "initializing server").Logger()
	logger.Info().Msg("initializing server")
	server := http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext:  func(net.Listener) context.Context { return c },
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Info().Msg("initialized server")

	go func() {
		logger = logger.With().Str(log.KeyProcess, "start server").Logger()
		logger.Info().Msgf("start listening request at %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("encounter error=%w while running server", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}()

	<-c.Done()
	logger = logger.With().Str(log.KeyProcess, "shutdown server").Logger()
	logger.Info().Msg("received interuption signal shutting down")
	c = logger.WithContext(c)
	if err := server.Shutdown(c); err != nil {
		err = fmt.Errorf("failed shutting down server with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("server completely shutdown")
}
