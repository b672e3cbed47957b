package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"figsearch/cmd/figsearch/ui"
	"figsearch/internal/bitmap"
	"figsearch/internal/config"
)

var viewCmd = &cobra.Command{
	Use:   "view [bitmap]",
	Short: "Interactively view the bitmap with results highlighted",
	Long: `Opens the bitmap in a scrollable terminal viewer. The longest
horizontal line, longest vertical line, and largest bordered square are
precomputed; keys h, v and s switch which one is highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	loader := bitmap.Loader{
		ChunkSize: cfg.Loader.ChunkSize,
		MaxPixels: cfg.Loader.MaxPixels,
	}
	bm, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	p := tea.NewProgram(ui.NewViewer(args[0], bm), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viewer failed: %w", err)
	}
	return nil
}
