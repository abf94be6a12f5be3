package main

import (
	"fmt"
	"io"

	"github.com/phanxgames/rangeslider"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Resolve slider options and print the result",
	Long: `Builds every configured slider on a headless scene and prints the
resolved configuration as YAML. Fails on the first invalid slider.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		return runValidate(cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(w io.Writer, opts []rangeslider.Options) error {
	factory := rangeslider.NewFactory(rangeslider.NewScene())
	defer factory.DestroyAll()
	for i, o := range opts {
		s, err := factory.Create(rangeslider.NewInput(fmt.Sprintf("slider%d", i)), o)
		if err != nil {
			return fmt.Errorf("slider %d: %w", i, err)
		}
		out, err := s.Config().YAML()
		if err != nil {
			return err
		}
		if len(opts) > 1 {
			fmt.Fprintf(w, "# slider%d\n", i)
		}
		if _, err := w.Write(out); err != nil {
			return err
		}
	}
	return nil
}
