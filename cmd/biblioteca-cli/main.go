package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dsalazr/biblioteca-service/config"
	"github.com/dsalazr/biblioteca-service/internal/cli"
	"github.com/dsalazr/biblioteca-service/internal/repository"
	"github.com/dsalazr/biblioteca-service/internal/service"
	"github.com/dsalazr/biblioteca-service/migrations"
	"github.com/dsalazr/biblioteca-service/pkg/logger"
	"github.com/dsalazr/biblioteca-service/pkg/postgres"
)

func main() {
	root := &cobra.Command{
		Use:           "biblioteca-cli",
		Short:         "Interactive console for the biblioteca catalog and loans",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			cfg := config.NewConfig()
			log := logger.NewLogger(cfg.Log, "cli")

			db, err := postgres.NewPostgresDB(cmd.Context(), &cfg.Database, migrations.MigrationFiles)
			if err != nil {
				return err
			}
			defer db.Close()

			repo, err := repository.NewRepository(db, log)
			if err != nil {
				return err
			}
			svc := service.NewService(repo, log)

			return cli.New(svc, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	if err := root.Execute(); err != nil {
		zap.NewExample().Error("biblioteca-cli", zap.Error(err))
		os.Exit(1)
	}
}
