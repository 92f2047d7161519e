package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fathom/blinker/internal/face"
	"github.com/fathom/blinker/internal/logging"
	"github.com/fathom/blinker/internal/util"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay glances without a terminal and print the mosaic state",
		Long: `simulate drives the face headlessly: the screen goes off, stays off for
--gap, comes back on, and runs --frames frames before the next glance.
One line is printed per glance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			glances, _ := cmd.Flags().GetInt("glances")
			gap, _ := cmd.Flags().GetDuration("gap")
			frames, _ := cmd.Flags().GetInt("frames")
			startStr, _ := cmd.Flags().GetString("start")

			if glances < 0 || frames < 0 || gap < 0 {
				return fmt.Errorf("glances, frames and gap must be non-negative")
			}
			start := time.Now()
			if startStr != "" {
				var err error
				start, err = time.Parse(time.RFC3339, startStr)
				if err != nil {
					return fmt.Errorf("parsing --start: %w", err)
				}
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			rng, seed := newRand(cmd)
			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
			logger.Info("simulating", "seed", seed, "glances", glances, "gap", gap)

			f, err := face.New(cfg, rng, logger, start)
			if err != nil {
				return err
			}
			return simulate(cmd.OutOrStdout(), f, start, glances, gap, frames)
		},
	}

	cmd.Flags().Int("glances", 20, "Number of glances to replay")
	cmd.Flags().Duration("gap", time.Minute, "Time the screen stays off between glances")
	cmd.Flags().Int("frames", 30, "Frames to run after each glance")
	cmd.Flags().String("start", "", "Simulated start time, RFC 3339 (default now)")

	return cmd
}

// simulate replays glances against f and writes one line per glance.
func simulate(w io.Writer, f *face.Face, start time.Time, glances int, gap time.Duration, frames int) error {
	m := f.Mosaic()
	fmt.Fprintf(w, "%-6s %-8s %-7s %-6s %s\n", "glance", "at", "active", "blink", "state")

	at := start
	for i := 1; i <= glances; i++ {
		resets := f.Resets()
		res := f.Glance(at, at.Add(gap))
		at = at.Add(gap)
		for range frames {
			f.Tick()
		}

		state := ""
		switch {
		case f.Resets() > resets:
			state = "reset"
		case res.WideOpen:
			state = "wide open"
		case res.Deactivated > 0:
			state = fmt.Sprintf("-%d popped", res.Deactivated)
		}
		if _, err := fmt.Fprintf(w, "%-6d %-8s %-7d %-6.2f %s\n",
			i, util.FormatDuration(at.Sub(start)), m.ActiveCount(), m.BlinkChance(), state); err != nil {
			return fmt.Errorf("writing simulation: %w", err)
		}
	}
	return nil
}
