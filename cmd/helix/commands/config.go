package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix-client/internal/constants"
)

// configKeys are the keys the config command manages.
var configKeys = []string{"client-id", "token", "output"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the helix CLI configuration file",
	}

	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(configKeys))
			for _, key := range configKeys {
				values[key] = displayValue(key, viper.GetString(key))
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(values)
			case OutputFormatYAML:
				return outputYAML(values)
			default:
				keys := make([]string, 0, len(values))
				for key := range values {
					keys = append(keys, key)
				}

				sort.Strings(keys)

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				for _, key := range keys {
					_ = table.Append(key, values[key])
				}

				_ = table.Render()

				return nil
			}
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !isConfigKey(key) {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			fmt.Println(displayValue(key, viper.GetString(key)))

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if !isConfigKey(key) {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			viper.Set(key, value)

			err := viper.WriteConfig()
			if err != nil {
				err = viper.SafeWriteConfig()
			}

			if err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !isConfigKey(key) {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			viper.Set(key, "")

			err := viper.WriteConfig()
			if err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			return nil
		},
	}
}

func isConfigKey(key string) bool {
	for _, known := range configKeys {
		if key == known {
			return true
		}
	}

	return false
}

// displayValue masks secrets in human-facing output.
func displayValue(key, value string) string {
	if value == "" {
		return ""
	}

	if key == "token" {
		return constants.MaskedSecret
	}

	return value
}
