package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/payprobe/internal/catalog"
	"github.com/bft-labs/payprobe/internal/cliconfig"
	"github.com/bft-labs/payprobe/internal/report"
	"github.com/bft-labs/payprobe/internal/trialfile"
	"github.com/bft-labs/payprobe/pkg/log"
	"github.com/bft-labs/payprobe/pkg/probe"
)

const longHelp = `
Send the same purchase to a payment gateway in several request shapes and
compare what comes back.

Each trial is POSTed in turn (flat fields, nested customer object, no line
items, raw vs Bearer Authorization). Every trial gets one report line on
stdout with its status and raw body; successful JSON answers also show the
transaction id, PIX code and QR-code payload when the gateway returned them.
Failures are reported and the run moves on.

Trials come from a built-in catalog or from a TOML trials file (--trials).
With --watch the trials file is re-run every time it is saved.
`

var exampleUsage = strings.TrimSpace(`
  payprobe --secret-key <key>
  payprobe --catalog all --timeout 5s
  payprobe --trials ./trials.toml --watch
  payprobe catalogs
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)

	if err := newRootCommand(logger).Execute(); err != nil {
		logger.Error("payprobe", log.Err(err))
		os.Exit(1)
	}
}

func newRootCommand(logger log.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "payprobe",
		Short:         "Probe which request format a payment gateway accepts",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}

			level, _ := log.ParseLevel(cfg.LogLevel)
			logger := log.NewZerologAdapter(cmd.ErrOrStderr(), level)
			logger.Debug("configuration", log.Any("config", cfg.Masked()))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, cmd.OutOrStdout(), logger)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.payprobe/config.toml)")
	root.Flags().StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "absolute URL trials are POSTed to")
	root.Flags().StringVar(&cfg.SecretKey, "secret-key", cfg.SecretKey, "gateway credential (or PAYPROBE_SECRET_KEY)")
	root.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-trial timeout")
	root.Flags().IntVar(&cfg.MaxBodyBytes, "max-body-bytes", cfg.MaxBodyBytes, "response bytes kept per trial")
	root.Flags().StringVar(&cfg.Catalog, "catalog", cfg.Catalog, fmt.Sprintf("built-in trial catalog (%s)", strings.Join(catalog.Names(), ", ")))
	root.Flags().StringVar(&cfg.TrialsFile, "trials", cfg.TrialsFile, "TOML trials file (replaces --catalog)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run the trials file whenever it changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "settle time before re-running a changed trials file")
	if err := root.Flags().MarkHidden("debounce"); err != nil {
		logger.Info("failed to hide debounce flag", log.Err(err))
	}
	root.Flags().StringVar(&cfg.CPF, "cpf", cfg.CPF, "CPF sent by the built-in catalogs")
	root.Flags().IntVar(&cfg.Amount, "amount", cfg.Amount, "amount in cents sent by the built-in catalogs")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "stderr log level (debug, info, warn, error)")

	root.AddCommand(newCatalogsCommand())
	return root
}

// loadConfig layers the config file, then PAYPROBE_* variables, under the
// flags that were set explicitly, and validates the result.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed, filepath.Dir(cfgFile)); err != nil {
			return err
		}
	} else if cfgPath != "" {
		return fmt.Errorf("config file %s not found", cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}

func run(ctx context.Context, cfg cliconfig.Config, out io.Writer, logger log.Logger) error {
	runner, err := probe.New(cfg.Endpoint, cfg.Timeout,
		probe.WithHTTPClient(&http.Client{}),
		probe.WithReporter(report.NewTextReporter(out)),
		probe.WithLogger(logger),
		probe.WithMaxBodyBytes(int64(cfg.MaxBodyBytes)),
	)
	if err != nil {
		return err
	}

	runOnce := func(ctx context.Context, trials []probe.Trial) error {
		results, err := runner.Run(ctx, trials)
		if err != nil {
			return err
		}
		return report.WriteSummary(out, results)
	}

	if cfg.TrialsFile == "" {
		trials, err := catalog.Build(cfg.Catalog, cfg.Profile(), cfg.SecretKey)
		if err != nil {
			return err
		}
		return runOnce(ctx, trials)
	}

	// Start watching before the first run so edits made during it are seen.
	var watcher *trialfile.Watcher
	if cfg.Watch {
		watcher, err = trialfile.NewWatcher(cfg.TrialsFile, cfg.SecretKey, cfg.Debounce, logger)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	trials, err := trialfile.Load(cfg.TrialsFile, cfg.SecretKey)
	if err != nil {
		return err
	}
	if err := runOnce(ctx, trials); err != nil {
		return err
	}
	if watcher == nil {
		return nil
	}

	logger.Info("watching trials file", log.String("path", cfg.TrialsFile))
	return watcher.Run(ctx, func(ctx context.Context, trials []probe.Trial) {
		fmt.Fprintln(out)
		if err := runOnce(ctx, trials); err != nil {
			logger.Error("probe run failed", log.Err(err))
		}
	})
}

func newCatalogsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalogs",
		Short: "List the built-in trial catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range catalog.Names() {
				trials, err := catalog.Build(name, catalog.DefaultProfile(), "")
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s:\n", name)
				for _, t := range trials {
					fmt.Fprintf(out, "  - %s\n", t.Label)
				}
			}
			return nil
		},
	}
}
