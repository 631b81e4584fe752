package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raykavin/chartplot/pkg/config"
	"github.com/raykavin/chartplot/pkg/logger"
	"github.com/raykavin/chartplot/pkg/logger/zerolog"
)

// Command line flags
var (
	configFile string
	symbol     string
	barsFile   string
	chartPath  string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "chartplot",
		Short:         "Render bar charts with indicators and chart objects",
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Configuration file (e.g. ./chartplot.yaml)")
	flags.StringVarP(&symbol, "symbol", "s", "", "Chart symbol, overrides chart.symbol")
	flags.StringVarP(&barsFile, "bars", "b", "", "Bar CSV file, overrides chart.bars")
	flags.StringVar(&chartPath, "chart", "", "Chart path, overrides chart.path")
	flags.StringVar(&logLevel, "log-level", "", "Log level, overrides log.level")

	rootCmd.AddCommand(
		buildRenderCmd(),
		buildInfoCmd(),
		buildObjectsCmd(),
		buildInitCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and applies the command line overrides
func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}

	if symbol != "" {
		cfg.Chart.Symbol = symbol
	}
	if barsFile != "" {
		cfg.Chart.Bars = barsFile
	}
	if chartPath != "" {
		cfg.Chart.Path = chartPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if cfg.Chart.Path == "" {
		cfg.Chart.Path = cfg.Chart.Symbol
	}

	log, err := zerolog.New(zerolog.Options{
		Level:      cfg.Log.Level,
		TimeLayout: "15:04:05",
		Colored:    cfg.Log.Colored,
		JSON:       cfg.Log.JSON,
		Output:     os.Stderr,
	})
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}

func buildInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <file>",
		Short: "Write a configuration file with the default values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration written to %s\n", args[0])
			return nil
		},
	}
}
