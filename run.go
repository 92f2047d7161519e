package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fathom/blinker/internal/face"
	"github.com/fathom/blinker/internal/logging"
	"github.com/fathom/blinker/internal/ui"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Show the watch face (default)",
		RunE:  runFace,
	}
}

func runFace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	rng, seed := newRand(cmd)
	logger.Info("starting", "version", version, "seed", seed)

	f, err := face.New(cfg, rng, logger, time.Now())
	if err != nil {
		return err
	}

	model := ui.New(f, ui.Options{
		Interval:          cfg.Face.FrameInterval(),
		ShowGlanceCounter: cfg.Face.ShowGlanceCounter,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running face: %w", err)
	}

	logger.Info("stopped", "glances", f.Glances(), "resets", f.Resets())
	return nil
}
