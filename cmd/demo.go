package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zhubert/popover/internal/config"
	"github.com/zhubert/popover/internal/demo"
	"github.com/zhubert/popover/internal/demo/scenarios"
	perrors "github.com/zhubert/popover/internal/errors"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Record scripted runs of the playground",
	Long: `Record scripted runs of the playground for documentation and bug reports.

Scenarios run headlessly on a virtual clock, so every run of a scenario
produces the same frames. The defaults are used unless --config is given.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print its frames
  cast      - Generate an asciinema cast file`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available demo scenarios:")
		fmt.Fprintln(out)
		for _, s := range scenarios.All() {
			fmt.Fprintf(out, "  %-15s %s\n", s.Name, s.Description)
		}
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print its frames",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Generate an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (default from the scenario)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (default from the scenario)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture a frame after every input (for debugging)")
	}
	demoCastCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file (default <scenario>.cast)")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func getScenario(name string) (*demo.Scenario, error) {
	scenario := scenarios.Get(name)
	if scenario == nil {
		return nil, fmt.Errorf("%w\nRun 'popover demo list' to see available scenarios", perrors.ScenarioNotFound(name))
	}

	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}
	return scenario, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	var cfg *config.Config
	if configPath != "" {
		var err error
		if cfg, err = config.LoadAndMerge(configPath); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	return demo.NewExecutor(execCfg, cfg).Run(scenario)
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(out, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(out, "Annotation: %s\n", f.Annotation)
		}
		fmt.Fprintln(out, f.Content)
	}
	return nil
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	outputFile := demoOutput
	if outputFile == "" {
		outputFile = scenario.Name + ".cast"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	header := demo.CastHeader{
		Width:  scenario.Width,
		Height: scenario.Height,
		Title:  "popover: " + scenario.Description,
	}
	if err := demo.GenerateASCIICast(f, frames, header); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(out, "Play with: asciinema play %s\n", outputFile)
	return nil
}
