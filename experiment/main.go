package main

import (
	"github.com/spf13/cobra"
	"github.com/unixpickle/essentials"

	"primcoll/config"
	"primcoll/lib/logger"
)

var (
	cfgFile  string
	logLevel string

	rootCmd = &cobra.Command{
		Use:           "primlist",
		Short:         "Exercise the primitive list containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cfgFile != "" {
				if err := config.SetupConfigProperties(cfgFile); err != nil {
					return err
				}
			}
			level := config.Properties.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			return logger.Setup(level)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.conf, .yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(scenariosCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		essentials.Die(err)
	}
}
