package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/ecopayback/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $ECOPAYBACK_HOME/config.yaml (default ~/.ecopayback/config.yaml)
with the built-in defaults.`,
		Example: `  # Create configuration
  ecopayback config init

  # Create configuration, overwriting existing
  ecopayback config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := config.GetConfigPath()
			if err != nil {
				return err
			}

			if !force {
				_, statErr := os.Stat(configPath)
				if statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", configPath, statErr)
				}
			}

			if err = config.Defaults().Save(configPath); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized at %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// NewConfigShowCmd creates the config show command that prints the effective
// configuration after file, .env and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(config.GetGlobalConfig())
			if err != nil {
				return fmt.Errorf("marshalling configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.GetGlobalConfig().Validate(); err != nil {
				return fmt.Errorf("configuration is invalid:\n%w", err)
			}
			cmd.Println("Configuration is valid")
			return nil
		},
	}
}
