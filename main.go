package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath    string
	debugLogging  bool
	replayVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "viewport",
	Short: "Pan and zoom an infinite canvas",
	Long: `viewport opens an infinite drawing plane that pans with Space+drag and
zooms around the cursor with the mouse wheel or a two-finger pinch.`,
	RunE:          runWindow,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the viewport window",
	Args:  cobra.NoArgs,
	RunE:  runWindow,
}

var replayCmd = &cobra.Command{
	Use:   "replay <script.star>",
	Short: "Replay a Starlark input script without a window",
	Long: `replay runs a Starlark script whose builtins (key, pointer, wheel, touch,
touch_end, resize) emit input events, feeds them to the viewport router, and
prints the resulting transform.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Log gesture and transform transitions to stderr")
	replayCmd.Flags().BoolVarP(&replayVerbose, "verbose", "v", false, "Print the transform after every event")

	rootCmd.AddCommand(runCmd, replayCmd)
}

// loadConfig returns the defaults, or the file named by --config.
func loadConfig() (Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadConfig(configPath); err != nil {
			return cfg, err
		}
	}
	if debugLogging {
		cfg.Debug = true
	}
	return cfg, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return RunWindow(cfg)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return Replay(cmd.OutOrStdout(), cfg, args[0], replayVerbose)
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
