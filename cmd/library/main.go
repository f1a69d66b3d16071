package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-records/library/app"
	"github.com/Astemirdum/library-records/library/config"
)

//	@title			Library Records API
//	@version		1.0
//	@description	Members, books, staff, borrowing records and reservations.
//	@BasePath		/

//go:generate go run github.com/swaggo/swag/cmd/swag init -d ../../ -g cmd/library/main.go -o ../../swagger --outputTypes go

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	return config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)
}

func newRootCmd() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the library HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Run(cfg)
		},
	}
	root := &cobra.Command{
		Use:          "library",
		Short:        "Library records service",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.Migrate(cfg)
		},
	}
	root.AddCommand(serve, migrate)
	return root
}
