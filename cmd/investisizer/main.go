package main

import (
	"fmt"
	"os"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/dyaboykyl/investisizer-sub001/internal/calculation"
	"github.com/dyaboykyl/investisizer-sub001/internal/config"
	"github.com/dyaboykyl/investisizer-sub001/internal/output"
	"github.com/dyaboykyl/investisizer-sub001/internal/store"
)

var (
	configFile   string
	outputFormat string
	dbFile       string
	debugMode    bool
)

// cliLogger adapts phuslu/log to the engine's Logger interface.
type cliLogger struct {
	l *log.Logger
}

func (c cliLogger) Debugf(format string, args ...any) { c.l.Debug().Msgf(format, args...) }
func (c cliLogger) Infof(format string, args ...any)  { c.l.Info().Msgf(format, args...) }
func (c cliLogger) Warnf(format string, args ...any)  { c.l.Warn().Msgf(format, args...) }
func (c cliLogger) Errorf(format string, args ...any) { c.l.Error().Msgf(format, args...) }

func newLogger() cliLogger {
	level := log.WarnLevel
	if debugMode {
		level = log.DebugLevel
	}
	return cliLogger{l: &log.Logger{
		Level:  level,
		Writer: &log.ConsoleWriter{Writer: os.Stderr},
	}}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "investisizer",
		Short: "Multi-asset portfolio projection engine",
		Long: `Investisizer projects investment accounts and leveraged real estate
over a multi-year horizon: compounding, amortization, rental cash flow,
planned sales with capital-gains taxes, and a combined portfolio view.`,
	}
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Run a portfolio projection",
		Long: `Project every enabled asset and the combined portfolio. Assets are
read from a YAML file (-c) or from a saved database (--db).`,
		RunE: runProject,
	}
	projectCmd.Flags().StringVarP(&configFile, "config", "c", "", "Portfolio YAML file")
	projectCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console, csv, json)")
	projectCmd.Flags().StringVar(&dbFile, "db", "", "Portfolio database file")

	exampleCmd := &cobra.Command{
		Use:   "example [filename]",
		Short: "Write an example portfolio file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_portfolio.yaml"
			if len(args) > 0 {
				filename = args[0]
			}
			if err := config.CreateExampleConfiguration(filename); err != nil {
				return err
			}
			fmt.Printf("Example portfolio written to %s\n", filename)
			return nil
		},
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import a YAML portfolio into a database",
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&configFile, "config", "c", "", "Portfolio YAML file (required)")
	importCmd.Flags().StringVar(&dbFile, "db", "", "Portfolio database file (required)")
	importCmd.MarkFlagRequired("config")
	importCmd.MarkFlagRequired("db")

	rootCmd.AddCommand(projectCmd, exampleCmd, importCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runProject(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	portfolio, err := loadPortfolio()
	if err != nil {
		return err
	}

	for _, warning := range config.Validate(portfolio) {
		logger.Warnf("%s", warning)
	}

	aggregator := calculation.NewAggregator(portfolio.Settings, portfolio.Assets)
	aggregator.SetLogger(logger)
	set := aggregator.Project()

	formatter, err := output.NewFormatter(outputFormat)
	if err != nil {
		return err
	}
	rendered, err := formatter.Format(set)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}
	fmt.Print(rendered)
	return nil
}

func loadPortfolio() (*config.Portfolio, error) {
	if configFile != "" {
		return config.NewInputParser().LoadFromFile(configFile)
	}
	if dbFile == "" {
		return nil, fmt.Errorf("either --config or --db is required")
	}
	db, err := store.Open(dbFile)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	settings, err := db.LoadSettings()
	if err != nil {
		return nil, err
	}
	assets, err := db.LoadAssets()
	if err != nil {
		return nil, err
	}
	return &config.Portfolio{Settings: settings, Assets: assets}, nil
}

func runImport(cmd *cobra.Command, args []string) error {
	portfolio, err := config.NewInputParser().LoadFromFile(configFile)
	if err != nil {
		return err
	}

	db, err := store.Open(dbFile)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveSettings(portfolio.Settings); err != nil {
		return err
	}
	for _, asset := range portfolio.Assets {
		if err := db.SaveAsset(asset); err != nil {
			return fmt.Errorf("save asset %s: %w", asset.ID(), err)
		}
	}
	fmt.Printf("Imported %d assets into %s\n", len(portfolio.Assets), dbFile)
	return nil
}
