package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/balkashynov/contrast/internal/config"
	"github.com/balkashynov/contrast/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "contrast",
	Short: "Check text and background colors against WCAG contrast thresholds",
	Long: `contrast tells you whether a text color is readable on a background color.
It computes the WCAG 2.0 contrast ratio and checks it against 4.5:1 for normal
text or 3:1 for large text.

Run without arguments to open the interactive checker.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          withApp(runUI),
}

// app carries what every command needs once config and logging are set up
type app struct {
	cfg *config.Config
	log *zap.Logger
}

// setup loads the config file and builds the logger
func setup() (*app, error) {
	path := configPath
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
		path = defaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logPath := cfg.Log.OutputPath
	if logPath == "" {
		if dir, err := config.Dir(); err == nil {
			logPath = filepath.Join(dir, "contrast.log")
		}
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		OutputPath: logPath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})
	if err != nil {
		// logging is never worth failing a check over
		log = logger.Nop()
	}

	return &app{cfg: cfg, log: log}, nil
}

// withApp wraps a command function to load config and logging first
func withApp(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.log.Sync() //nolint:errcheck

		a.log.Debug("command started", zap.String("command", cmd.Name()), zap.Strings("args", args))
		if err := fn(cmd, args, a); err != nil {
			a.log.Error("command failed", zap.String("command", cmd.Name()), zap.Error(err))
			return err
		}
		return nil
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "contrast %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.contrast/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	addUIFlags(rootCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
