package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"adaptkit/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "adaptkit",
	Short: "Demonstrate the Adapter structural design pattern",
	Long: `adaptkit demonstrates the Adapter structural design pattern: a
client-expected Target interface, an existing but incompatible Adaptee,
and an Adapter that bridges the two without modifying either.

Run "adaptkit demo" to see the pattern in action.`,
	// SilenceUsage is set to true to prevent printing usage message on
	// errors handled by us (e.g. an unreadable config file)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		// Logs go to stderr so the demo transcript on stdout stays clean.
		logging.InitForCLI(level, os.Stderr)
	},
}

var verbose bool

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "adaptkit version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newVersionCmd())
}
