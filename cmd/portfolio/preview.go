package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/Zachkp/portfolio/internal/preview"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Scroll through the project gallery in the terminal",
	Long: `Open a terminal preview of the project gallery.

Keys:
  Up/Down, PgUp/PgDn, mouse wheel   scroll
  1-9                               jump to a project
  g                                 jump to the project grid
  j/k                               scroll the grid list
  q, Esc                            quit`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, c, err := loadInputs()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	p := preview.New(screen, c.Projects, cfg.Scroll.Spring(), cfg.Scroll.Breakpoint, nil)
	defer p.Close()
	return p.Run(ctx)
}
