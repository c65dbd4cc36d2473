// Package main implements the portfolio CLI: the web server, the terminal
// gallery preview, and one-shot gallery calculations.
package main

import (
	"fmt"
	"os"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	// configPath is an optional YAML config file
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio server with a scroll-driven project gallery",
	Long: `portfolio serves the portfolio site and exposes its gallery engine.

Configuration is read from an optional YAML file, a .env file in the working
directory, and PORTFOLIO_ prefixed environment variables.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(jumpCmd)
	rootCmd.AddCommand(previewCmd)
}

// loadInputs reads the configuration and the content it points at.
func loadInputs() (*config.Config, *content.Content, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	c, err := content.Load(cfg.Content.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load content: %w", err)
	}
	return cfg, c, nil
}
