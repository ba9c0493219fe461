package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file and global flags are
applied, as YAML. Redirect it to a file to start a custom config.

Examples:
  twenty48 config > ~/.twenty48/config.yaml
  twenty48 config --strength hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
