// cmd/beams/main.go
package main

import (
	"fmt"
	"go-beams/internal/config"
	"go-beams/internal/logging"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	settings *config.Settings
	vcfg     *viper.Viper
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "beams",
	Short: "Falling light beams that burst where they meet a boundary",
	Long: `beams animates thin vertical beams falling through a scene. Each beam is
polled against a shared horizontal boundary; on contact it emits a short
particle burst, waits out a cooldown and falls again.

Run without arguments to open the window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, v, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if verbose {
			s.Log.Level = "debug"
		}
		l, err := logging.New(s.Log)
		if err != nil {
			return err
		}
		settings, vcfg, logger = s, v, l
		if used := v.ConfigFileUsed(); used != "" {
			logger.Debug("config loaded", zap.String("file", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default: ./beams.yaml or ./configs/beams.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
