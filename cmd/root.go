package cmd

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/popover/internal/app"
	"github.com/zhubert/popover/internal/config"
	"github.com/zhubert/popover/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	logFile               string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "popover",
	Short: "Terminal playground for anchored, draggable popovers",
	Long: `Popover presents transient overlays on a terminal surface. Each popover is
anchored to a source frame, kept inside the screen, and can be dragged between
anchors or dismissed with a tap outside or a flick toward an edge.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.popover/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logger.DefaultLogPath, "Debug log file")
}

func initConfig() {
	if err := logger.Init(logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("popover %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("popover %s\n", version)
}

// resolveConfigPath returns --config or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func runTUI(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.LoadAndMerge(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m, err := app.New(cfg, version)
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
