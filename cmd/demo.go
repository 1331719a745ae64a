package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"adaptkit/internal/color"
	"adaptkit/internal/config"
	"adaptkit/internal/demo"
)

func newDemoCmd() *cobra.Command {
	var (
		interactive bool
		colorMode   string
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the adapter pattern demonstration",
		Long: `Prints the three-step demonstration: the Target's default behavior,
the Adaptee's incompatible raw output, and the Adapter translating the
Adaptee for the client.

With --interactive the same demonstration is stepped through one
keypress at a time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if colorMode != "" {
				cfg.ColorMode = colorMode
			}

			mode, err := color.ParseMode(cfg.ColorMode)
			if err != nil {
				return err
			}
			palette := color.NewPalette(color.Resolve(mode))

			sections := demo.Transcript(cfg.Sentence)
			if interactive {
				return demo.RunWalkthrough(sections, palette)
			}
			return demo.NewRunner(cmd.OutOrStdout(), palette).Run(sections)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "step through the demonstration one keypress at a time")
	cmd.Flags().StringVar(&colorMode, "color", "", "color mode: auto, always or never (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to an explicit config file")

	return cmd
}
