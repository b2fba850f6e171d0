package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"filmrec/internal/config"
	"filmrec/internal/domain"
	"filmrec/internal/logging"
	"filmrec/internal/store"
	"filmrec/internal/ui"
)

var version = "dev"

// options holds the command line flags
type options struct {
	configPath string
	logFile    string
	searchMode string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "filmrec",
		Short: "Browse film recommendations in the terminal",
		Long: `filmrec shows a short list of recommended films as cards and lets you
narrow the list by title.

Press / to type a title, Enter to search, ? for all keys.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultFileName, "path to the TOML config file")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file (overrides config)")
	flags.StringVar(&opts.searchMode, "search-mode", "", `"narrow" filters the current list, "seed" always filters the full list`)
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "filmrec %s\n", version)
		},
	}
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.NewConfigService().LoadFromPath(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.searchMode != "" {
		cfg.Search.Mode = opts.searchMode
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newModel wires the store to the shell the way the program runs them
func newModel(cfg *config.Config, logger *zap.Logger, ready io.Writer) (*ui.Model, error) {
	mode, err := cfg.SearchMode()
	if err != nil {
		return nil, err
	}

	films := store.New(domain.SeedFilms(),
		store.WithMode(mode),
		store.WithLogger(logger.Named("store")),
	)

	opts := []ui.Option{}
	if ready != nil {
		opts = append(opts, ui.WithReadySignal(ready))
	}
	return ui.NewModel(cfg, films, logger.Named("ui"), opts...), nil
}

func run(ctx context.Context, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Verbose: opts.verbose,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var ready io.Writer
	if os.Getenv("FILMREC_E2E_TEST") == "1" {
		ready = os.Stdout
	}

	model, err := newModel(cfg, logger, ready)
	if err != nil {
		return err
	}
	defer model.Close()

	logger.Info("starting",
		zap.String("version", version),
		zap.String("config", opts.configPath),
		zap.String("search_mode", cfg.Search.Mode))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("interrupted")
			return nil
		}
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}

	logger.Info("exited normally")
	return nil
}
