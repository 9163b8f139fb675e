package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/popover/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage popover configuration",
	Long:  `Commands for creating and validating ~/.popover/config.yaml.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a config.yaml template",
	Long: `Creates a config file listing every setting with its default value.

Examples:
  popover config init                      # Write ~/.popover/config.yaml
  popover config init --config ./dev.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate config.yaml",
	Long:  `Loads the configuration file, merges it with the defaults and reports every problem.`,
	RunE:  runConfigValidate,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if err := config.WriteTemplate(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		fmt.Fprintf(os.Stderr, "No %s found, using defaults.\n", path)
		cfg = config.DefaultConfig()
	}
	cfg = config.Merge(cfg, config.DefaultConfig())

	errs := config.Validate(cfg)
	if len(errs) == 0 {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Configuration is valid.")
		fmt.Fprintf(out, "  Theme: %s\n", cfg.Theme)
		fmt.Fprintf(out, "  Dismissal: %s\n", strings.Join(cfg.Dismissal.Modes, ", "))
		if len(cfg.RubberBanding) == 0 {
			fmt.Fprintln(out, "  Rubber banding: off")
		} else {
			fmt.Fprintf(out, "  Rubber banding: %s\n", strings.Join(cfg.RubberBanding, ", "))
		}
		return nil
	}

	var sb strings.Builder
	sb.WriteString("Configuration has errors:\n")
	for _, e := range errs {
		sb.WriteString(fmt.Sprintf("  - %s: %s\n", e.Field, e.Message))
	}
	return fmt.Errorf("%s", sb.String())
}
