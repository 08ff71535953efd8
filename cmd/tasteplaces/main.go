// Package main implements the tasteplaces command line: an interactive
// browser for the restaurant catalog and a one-shot list command.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tasteplaces/tasteplaces/internal/catalog"
	"github.com/tasteplaces/tasteplaces/internal/engine"
	"github.com/tasteplaces/tasteplaces/internal/service"
	"github.com/tasteplaces/tasteplaces/internal/session"
	"github.com/tasteplaces/tasteplaces/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var (
	// Global flags
	dataFile string
	locale   string
	logFile  string
	logLevel string

	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tasteplaces",
	Short: "Browse Montreal restaurants",
	Long: `tasteplaces lists restaurants with search, rating, price and cuisine
filters and a cyclic sort.

Run without arguments to start the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		// The browser owns the terminal, so logs only go to a file when asked
		if logFile == "" {
			log = zap.NewNop()
			return nil
		}
		var err error
		log, err = logger.NewFile(logLevel, logFile)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runBrowse,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", "", "Catalog file, YAML or JSON, optionally .gz (default $DATA_FILE)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Locale used to sort names (default $SORT_LOCALE, then en)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	registerListFlags()

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// flagOrEnv returns the flag value when set, else the environment variable, else fallback
func flagOrEnv(flag, env, fallback string) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

// newServices wires the catalog named by the global flags and the environment
func newServices() (*service.RestaurantService, *service.SessionService, error) {
	loc := flagOrEnv(locale, "SORT_LOCALE", "en")
	tag, err := language.Parse(loc)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid locale %q: %w", loc, err)
	}

	repo, err := catalog.Open(flagOrEnv(dataFile, "DATA_FILE", ""))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	restaurants := service.NewRestaurantService(repo, engine.New(engine.WithLocale(tag)))
	return restaurants, service.NewSessionService(restaurants, session.NewStore()), nil
}
