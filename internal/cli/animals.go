package cli

import (
	"github.com/spf13/cobra"

	"menagerie/internal/domain"
	"menagerie/internal/logger"
	"menagerie/internal/service"
	"menagerie/internal/sink"
)

func animalsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "animals",
		Short: "Save, reload, and display the fixed animal list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			log := logger.L()
			log.Info("running animals demo", "format", cfg.Format)

			registry := domain.AnimalRegistry()
			demo := service.New(
				"animals",
				newStore(cfg.Format, registry),
				sink.NewConsole(),
				domain.DefaultAnimals(),
				service.DataPath(cfg.DataDir, "animals", cfg.Format),
				log,
			)
			return demo.Run(cmd.Context())
		},
	}
}
