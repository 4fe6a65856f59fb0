package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docstat-cli/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit persisted settings",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE:  runConfigPath,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return fmt.Errorf("settings store %w", domain.ErrNotConfigured)
	}
	cmd.Println(settingsStore.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return fmt.Errorf("settings store %w", domain.ErrNotConfigured)
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	switch args[0] {
	case "stats.delimiter":
		cmd.Println(settings.Stats.Delimiter)
	case "stats.tie_break":
		cmd.Println(settings.Stats.TieBreak)
	case "output.no_color":
		cmd.Println(strconv.FormatBool(settings.Output.NoColor))
	default:
		return unknownKey(args[0])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return fmt.Errorf("settings store %w", domain.ErrNotConfigured)
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "stats.delimiter":
		settings.Stats.Delimiter = value
	case "stats.tie_break":
		if _, err := domain.ParseTieBreak(value); err != nil {
			return err
		}
		settings.Stats.TieBreak = value
	case "output.no_color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: output.no_color wants true or false, got %q", domain.ErrInvalidInput, value)
		}
		settings.Output.NoColor = b
	default:
		return unknownKey(key)
	}

	if err := settingsStore.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	cmd.Printf("%s = %s\n", key, value)
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("%w: unknown setting %q (known: stats.delimiter, stats.tie_break, output.no_color)", domain.ErrInvalidInput, key)
}
