package main

import (
	"encoding/json"
	"fmt"

	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/spf13/cobra"
)

var (
	progress       float64
	viewportWidth  float64
	segment        int
	viewportHeight float64
	containerTop   float64
)

func init() {
	frameCmd.Flags().Float64Var(&progress, "progress", 0, "gallery progress in [0, 1]")
	frameCmd.Flags().Float64Var(&viewportWidth, "width", 1280, "viewport width in pixels")

	jumpCmd.Flags().IntVar(&segment, "segment", 0, "segment to jump to (projects first, then the grid)")
	jumpCmd.Flags().Float64Var(&viewportHeight, "viewport", 900, "viewport height in pixels")
	jumpCmd.Flags().Float64Var(&containerTop, "top", 0, "page offset of the gallery container")
	jumpCmd.Flags().Float64Var(&viewportWidth, "width", 1280, "viewport width in pixels")
}

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Print the gallery frame for a progress value",
	Long: `Print every derived value of the gallery at one progress value as JSON.

Examples:
  # Halfway through the gallery on desktop
  portfolio frame --progress 0.5

  # The same point on a phone
  portfolio frame --progress 0.5 --width 390`,
	Args: cobra.NoArgs,
	RunE: runFrame,
}

var jumpCmd = &cobra.Command{
	Use:   "jump",
	Short: "Print the scroll offset that settles on a gallery segment",
	Long: `Print the page offset a navigation jump scrolls to.

Examples:
  # Third project, gallery starting 900px down the page
  portfolio jump --segment 2 --viewport 900 --top 900`,
	Args: cobra.NoArgs,
	RunE: runJump,
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runFrame(cmd *cobra.Command, _ []string) error {
	cfg, c, err := loadInputs()
	if err != nil {
		return err
	}
	if progress < 0 || progress > 1 {
		return fmt.Errorf("progress %v must be within [0, 1]", progress)
	}

	mode := scroll.ModeFor(viewportWidth, cfg.Scroll.Breakpoint)
	l := scroll.NewLayout(len(c.Projects), mode)
	return writeJSON(cmd, scroll.Compute(l, mode, progress))
}

func runJump(cmd *cobra.Command, _ []string) error {
	cfg, c, err := loadInputs()
	if err != nil {
		return err
	}
	if viewportHeight <= 0 {
		return fmt.Errorf("viewport height must be positive")
	}

	mode := scroll.ModeFor(viewportWidth, cfg.Scroll.Breakpoint)
	l := scroll.NewLayout(len(c.Projects), mode)
	offset, err := scroll.NewNavigator(l, nil).Target(segment, viewportHeight, containerTop)
	if err != nil {
		return err
	}
	return writeJSON(cmd, map[string]any{"segment": segment, "offset": offset})
}
