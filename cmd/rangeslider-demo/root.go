package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/rangeslider"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rangeslider-demo",
	Short: "Opens a window with range sliders",
	Long: `Opens a window with one or more range sliders. Sliders come from a YAML
options file (--config) or from the command-line flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML file with slider options")
	rootCmd.PersistentFlags().Bool("vertical", false, "Lay the slider out vertically")
	rootCmd.PersistentFlags().Float64("min", 0, "Lower bound")
	rootCmd.PersistentFlags().Float64("max", 100, "Upper bound")
	rootCmd.PersistentFlags().Float64("step", 1, "Step")
	rootCmd.PersistentFlags().Float64("value", 50, "Initial value")
	rootCmd.PersistentFlags().String("buffer", "", `Buffer level, "N%" or "Npx"`)
	rootCmd.Flags().Bool("debug", false, "Log debug records to stderr")
	rootCmd.Flags().String("script", "", "JSON test script to replay, exiting when done")
}

// loadOptions reads the slider options selected by the flags.
func loadOptions(cmd *cobra.Command) ([]rangeslider.Options, error) {
	flags := cmd.Flags()
	if path, _ := flags.GetString("config"); path != "" {
		return rangeslider.LoadOptionsFile(path)
	}
	vertical, _ := flags.GetBool("vertical")
	lo, _ := flags.GetFloat64("min")
	hi, _ := flags.GetFloat64("max")
	step, _ := flags.GetFloat64("step")
	value, _ := flags.GetFloat64("value")
	buffer, _ := flags.GetString("buffer")
	return []rangeslider.Options{{
		Min:      rangeslider.Float(lo),
		Max:      rangeslider.Float(hi),
		Step:     rangeslider.Float(step),
		Value:    rangeslider.Float(value),
		Buffer:   buffer,
		Vertical: vertical,
	}}, nil
}

// layout spreads the sliders out so they do not overlap.
func layout(opts []rangeslider.Options) {
	for i := range opts {
		o := &opts[i]
		if o.X == 0 && o.Y == 0 {
			if o.Vertical {
				o.X, o.Y = float64(400+i*60), 40
			} else {
				o.X, o.Y = 40, float64(40+i*60)
			}
		}
		if o.Length == 0 {
			o.Length = 300
		}
	}
}

func runDemo(cmd *cobra.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	layout(opts)

	scene := rangeslider.NewScene()
	scene.ClearColor = rangeslider.Color{R: 0.137, G: 0.118, B: 0.176, A: 1}
	scene.SetTouchScroll(true)
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		scene.SetDebugMode(true)
	}

	factory := rangeslider.NewFactory(scene)
	for i, o := range opts {
		in := rangeslider.NewInput(fmt.Sprintf("slider%d", i))
		name := in.Name
		o.OnSlideEnd = func(value, percent, position float64) {
			rangeslider.Logger().Info("slide end", "input", name, "value", value, "percent", percent)
		}
		if _, err := factory.Create(in, o); err != nil {
			return fmt.Errorf("slider %d: %w", i, err)
		}
	}

	cfg := rangeslider.RunConfig{
		Title:     "Range Slider Demo",
		Width:     800,
		Height:    480,
		ShowFPS:   true,
		Resizable: true,
	}
	if path, _ := cmd.Flags().GetString("script"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		runner, err := rangeslider.LoadTestScript(data)
		if err != nil {
			return err
		}
		runner.OnMark = func(label string) {
			for _, s := range factory.Sliders() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s=%v\n", label, s.Input().Name, s.Value())
			}
		}
		scene.SetTestRunner(runner)
		cfg.ExitWhenScriptDone = true
	}
	return rangeslider.Run(scene, cfg)
}
