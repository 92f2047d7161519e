package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/fathom/blinker/internal/config"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blinker",
		Short: "A terminal watch face that grows eyes as you glance at it",
		Long: `blinker is a watch face for the terminal. Every glance brings another
eye onto the mosaic, long absences make eyes pop out, and a quick run of
glances makes every eye stare back wide open.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFace,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")
	rootCmd.PersistentFlags().Int("accelerate", 0, "Count every glance this many times")
	rootCmd.PersistentFlags().Int("fps", 0, "Interactive frame rate")

	rootCmd.AddCommand(
		newRunCmd(),
		newSimulateCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "blinker version %s\n", version)
		},
	}
}

// loadConfig reads the config file and environment, then applies any flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("accelerate") {
		cfg.Face.Accelerate, _ = flags.GetInt("accelerate")
	}
	if flags.Changed("fps") {
		cfg.Face.FPS, _ = flags.GetInt("fps")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newRand returns the seeded source and the seed actually used.
func newRand(cmd *cobra.Command) (*rand.Rand, uint64) {
	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
