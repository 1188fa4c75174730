package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	cartCmd "github.com/fitin/storefront/cart/cmd"
	catalogCmd "github.com/fitin/storefront/catalog/cmd"
	"github.com/fitin/storefront/internal/constants"
	"github.com/fitin/storefront/internal/log"
	notificationCmd "github.com/fitin/storefront/notification/cmd"
	orderCmd "github.com/fitin/storefront/order/cmd"
	userCmd "github.com/fitin/storefront/user/cmd"
)

func Start() {
	logger := log.InitLogger("/var/log/storefront.log", os.Getenv("STOREFRONT_ENV")).
		With().
		Str(log.KeyAppName, constants.APP_MAIN_STOREFRONT).
		Str(log.KeyTag, "main Start").
		Logger()

	logger.Info().Msg("adding listener for SIGINT and SIGTERM")
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info().Msg("added listener for SIGINT and SIGTERM")

	c = logger.WithContext(c)

	rootCmd := &cobra.Command{Use: "storefront"}
	commands := []*cobra.Command{
		{
			Use:   "catalog",
			Short: "Run catalog service",
			Run: func(cmd *cobra.Command, args []string) {
				catalogCmd.RunCatalogService(cmd.Context())
			},
		},
		{
			Use:   "cart",
			Short: "Run cart service",
			Run: func(cmd *cobra.Command, args []string) {
				cartCmd.RunCartService(cmd.Context())
			},
		},
		{
			Use:   "order",
			Short: "Run order service",
			Run: func(cmd *cobra.Command, args []string) {
				orderCmd.RunOrderService(cmd.Context())
			},
		},
		{
			Use:   "user",
			Short: "Run user service",
			Run: func(cmd *cobra.Command, args []string) {
				userCmd.RunUserService(cmd.Context())
			},
		},
		{
			Use:   "notification",
			Short: "Run notification service",
			Run: func(cmd *cobra.Command, args []string) {
				notificationCmd.RunNotificationService(cmd.Context())
			},
		},
	}
	rootCmd.AddCommand(commands...)
	if err := rootCmd.ExecuteContext(c); err != nil {
		logger.Fatal().Err(err).Msgf("error when executing command=%s", err.Error())
	}
}
