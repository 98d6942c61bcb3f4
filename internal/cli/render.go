package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IVANSLASH/framegen/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		configPath string
		output     string
		detailed   bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the model as a DOT or SVG drawing",
		Long: `Render generates the model and produces a level-ranked drawing of it.
The output format is taken from the file extension: .dot or .svg.`,
		Example: `  framegen render
  framegen render --config building.toml --output frame.svg
  framegen render --output frame.dot --detailed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFromPath(output)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Config:   &cfg,
				Formats:  []string{format},
				Detailed: detailed,
				Logger:   c.Logger,
			}

			runner := c.newRunner(noCache)
			defer runner.Close()

			spin := newSpinnerWithContext(cmd.Context(), "Rendering...")
			spin.Start()
			result, err := runner.Execute(cmd.Context(), opts)
			spin.Stop()
			if err != nil {
				return err
			}

			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return err
				}
			}
			if err := os.WriteFile(output, result.Artifacts[format], 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			printSuccess("Rendered %s", format)
			printStats(result.Stats.NodeCount, result.Stats.ElementCount, result.CacheInfo.ModelHit)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (TOML)")
	cmd.Flags().StringVarP(&output, "output", "o", "model.svg", "output file (.dot or .svg)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include coordinates and section groups in node labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the model cache")

	return cmd
}

// formatFromPath maps an output file extension to an artifact format.
func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot":
		return pipeline.FormatDOT, nil
	case ".svg":
		return pipeline.FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported output extension %q (use .dot or .svg)", filepath.Ext(path))
	}
}
