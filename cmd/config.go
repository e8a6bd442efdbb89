package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FluidXR/tabletswitch/internal/config"
)

func configTarget() string {
	if configFile != "" {
		return configFile
	}
	return config.ConfigPath()
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show tabletswitch configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Printf("Config file: %s\n\n", configTarget())
		fmt.Printf("tool:          %s\n", cfg.Tool)
		fmt.Printf("output:        %s\n", cfg.Output)
		fmt.Printf("poll_interval: %s\n", cfg.PollInterval)
		fmt.Printf("notify:        %t\n", cfg.Notify)
		fmt.Printf("journal:       %t\n", cfg.Journal)
		fmt.Printf("log_level:     %s\n", cfg.LogLevel)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if err := config.SaveTo(cfg, configTarget()); err != nil {
			return err
		}
		fmt.Printf("Config created at %s\n", configTarget())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long:  `Example: tabletswitch config set poll_interval 500ms`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		cfg, err := config.LoadFrom(configTarget())
		if err != nil {
			return err
		}
		if err := cfg.Set(key, value); err != nil {
			return err
		}
		if err := config.SaveTo(cfg, configTarget()); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
