package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/fitin/storefront/internal/config"
	"github.com/fitin/storefront/internal/constants"
	"github.com/fitin/storefront/internal/infra"
	"github.com/fitin/storefront/internal/log"
	"github.com/fitin/storefront/internal/middleware"
	inOtel "github.com/fitin/storefront/internal/otel"
	"github.com/fitin/storefront/internal/repository"
	"github.com/fitin/storefront/user/internal/controller"
	userOtel "github.com/fitin/storefront/user/internal/otel"
	"github.com/fitin/storefront/user/internal/service"
	"github.com/fitin/storefront/user/session"
)

func RunUserService(c context.Context) {
	cfg := config.InitConfig(c, constants.APP_USER_SERVICE)

	logger := log.InitLogger(
		fmt.Sprintf("/var/log/%s.log", constants.APP_USER_SERVICE),
		cfg.Application.Env,
	).
		With().
		Str(log.KeyAppName, constants.APP_USER_SERVICE).
		Str(log.KeyTag, "main RunUserService").
		Logger()

	c = logger.WithContext(c)
	c, span := userOtel.Tracer.Start(c, "RunUserService")
	defer span.End()

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	shutdownFuncs, err := inOtel.InitOtelSdk(c, constants.APP_USER_SERVICE, cfg.Otel)
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

	logger = logger.With().Str(log.KeyProcess, "initializing userService").Logger()
	logger.Info().Msg("initializing userService")
	queries := repository.New(db)
	registry := session.NewRegistry()
	userService := service.NewUserService(db, queries, registry, cfg.Application.SecretKey)
	logger.Info().Msg("initialized userService")

	unsubscribe := registry.Subscribe(func(s session.State) {
		if s.User == nil {
			logger.Info().Str(log.KeyTag, "session observer").Msg("signed out")
			return
		}
		logger.Info().
			Str(log.KeyTag, "session observer").
			Str(log.KeyUserID, s.User.ID.String()).
			Bool("admin", s.Admin).
			Msg("signed in")
	})
	defer unsubscribe()

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.StrictSlash(true)
	router.Use(
		otelmux.Middleware(constants.APP_USER_SERVICE),
		middleware.Logging,
		middleware.RecoverPanic,
	)
	logger.Info().Msg("initialized router")

	logger = logger.With().Str(log.KeyProcess, "attach user controller").Logger()
	logger.Info().Msg("attaching user controller")
	controller.AttachUserController(router, &userService, cfg.Application.SecretKey)
	logger.Info().Msg("attached user controller")

	logger = logger.With().Str(log.KeyProcess, "initializing server").Logger()
	logger.Info().Msg("initializing server")
	server := http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext:  func(net.Listener) context.Context { return c },
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
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
