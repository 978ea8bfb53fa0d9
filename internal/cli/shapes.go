package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"menagerie/internal/config"
	"menagerie/internal/domain"
	"menagerie/internal/logger"
	"menagerie/internal/service"
	"menagerie/internal/sink"
)

// RenderFileName is the fixed output file used when file output is selected.
const RenderFileName = "render.txt"

func shapesCmd(opts *options) *cobra.Command {
	var output string

	c := &cobra.Command{
		Use:   "shapes",
		Short: "Save, reload, and display the fixed shape list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Output = config.NormalizeOutput(output)
			}

			logger.L().Info("running shapes demo", "format", cfg.Format, "output", cfg.Output)
			return runShapes(cmd.Context(), cfg)
		},
	}

	c.Flags().StringVar(&output, "output", "", "display destination: console|file (unrecognized values fall back to console)")
	return c
}

func runShapes(ctx context.Context, cfg *config.Config) (err error) {
	var out sink.Sink = sink.NewConsole()

	if cfg.Output == config.OutputFile {
		f, ferr := sink.NewFile(filepath.Join(cfg.DataDir, RenderFileName))
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = f
	}

	registry := domain.ShapeRegistry()
	demo := service.New(
		"shapes",
		newStore(cfg.Format, registry),
		out,
		domain.DefaultShapes(),
		service.DataPath(cfg.DataDir, "shapes", cfg.Format),
		logger.L(),
	)
	return demo.Run(ctx)
}
