package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/m-horky/autocli/internal/config"
	"github.com/m-horky/autocli/internal/contract"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	contractPath string

	// Effective configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "autocli",
	Short: "autocli - contract-driven command-line grammar for HTTP APIs",
	Long: `autocli reads an API contract and turns it into a command-line
grammar: ordered tokens describe an HTTP request, the contract decides
whether the description is complete, and the same grammar drives shell
completion for every token.

Example:
  autocli run dns domain=example.org a -X POST -H Authorization secret -Q name www -D @record.json`,
	TraverseChildren: true,
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if contractPath != "" {
			cfg.Contract.Path = contractPath
		}
		return initLogger(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// initLogger builds the process logger. Completion runs inside the
// user's shell where stray output corrupts the candidate list, so it
// stays silent unless verbose output is requested.
func initLogger(cmd *cobra.Command) error {
	if cmd.Name() == "complete" && !verbose {
		logger = zap.NewNop()
		return nil
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Logging.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	built, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built.With(zap.String("invocation", uuid.NewString()))
	return nil
}

// loadIndex validates the configuration and builds the contract index.
func loadIndex() (*contract.Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	doc, err := contract.Load(cfg.Contract.Path, contractFormat(cfg.Contract.Format))
	if err != nil {
		return nil, err
	}
	return contract.NewIndex(doc, logger), nil
}

// contractFormat maps the configured format name onto the loader's enum.
func contractFormat(name string) contract.Format {
	switch name {
	case "json":
		return contract.FormatJSON
	case "yaml":
		return contract.FormatYAML
	default:
		return contract.FormatAuto
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "autocli.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&contractPath, "contract", "", "Contract document path (overrides the configuration)")

	// Paths flags
	pathsCmd.Flags().BoolVar(&showParams, "params", false, "Show the declared parameters of every operation")

	// Config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	// Add commands to root
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
