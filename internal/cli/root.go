package cli

import (
	"os"

	"github.com/spf13/cobra"

	"menagerie/internal/codec"
	"menagerie/internal/config"
	"menagerie/internal/domain"
	"menagerie/internal/logger"
	"menagerie/internal/store"
	"menagerie/internal/store/sqlite"
)

// Execute runs the root command, exiting non-zero on any failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options carries the persistent flag values shared by all subcommands.
type options struct {
	configPath string
	format     string
	dataDir    string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "menagerie",
		Short:        "Menagerie — save, reload, and display polymorphic entity lists",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default: $MENAGERIE_CONFIG, ./menagerie.yaml)")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "", "storage format: json|xml|sqlite (unrecognized values fall back to json)")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "directory for data files (default \".\")")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to stderr")

	cmd.AddCommand(animalsCmd(opts))
	cmd.AddCommand(shapesCmd(opts))

	return cmd
}

// loadConfig resolves configuration: file, then environment, then flags.
func loadConfig(opts *options) (*config.Config, error) {
	var cfg *config.Config
	if opts.configPath != "" {
		c, err := config.LoadFrom(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else {
		c, _, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	if opts.format != "" {
		cfg.Format = opts.format
	}
	if opts.dataDir != "" {
		cfg.DataDir = opts.dataDir
	}
	if opts.debug {
		cfg.Debug = true
	}

	cfg.Format = config.NormalizeFormat(cfg.Format)
	cfg.Output = config.NormalizeOutput(cfg.Output)

	logger.Setup(cfg.Debug)
	return cfg, nil
}

// newStore wires the store for the normalized format selector.
func newStore(format string, registry *domain.Registry) store.Store {
	switch format {
	case config.FormatSQLite:
		return sqlite.New(registry)
	case config.FormatXML:
		return store.NewFileStore(store.NewSerializer(codec.NewXMLCodec(), registry))
	default:
		return store.NewFileStore(store.NewSerializer(codec.NewJSONCodec(), registry))
	}
}
