package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/IVANSLASH/framegen/pkg/pipeline"
)

// artifactFiles maps artifact formats to their output filenames.
var artifactFiles = map[string]string{
	pipeline.FormatNodes:    "nodes.csv",
	pipeline.FormatElements: "elements.csv",
	pipeline.FormatDOT:      "model.dot",
	pipeline.FormatSVG:      "model.svg",
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		configPath string
		outDir     string
		formats    string
		detailed   bool
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the structural model from a building configuration",
		Long: `Generate builds the node lattice and frame elements described by a
configuration file and writes the requested artifacts. Without --config the
packaged 3x3-bay, 3-story geometry is used.`,
		Example: `  framegen generate
  framegen generate --config building.toml --out results
  framegen generate --formats nodes,elements,svg --detailed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Config:   &cfg,
				Formats:  append([]string{pipeline.FormatSummary}, parseFormats(formats)...),
				Detailed: detailed,
				Refresh:  refresh,
				Logger:   c.Logger,
			}

			runner := c.newRunner(noCache)
			defer runner.Close()

			spin := newSpinnerWithContext(cmd.Context(), "Generating model...")
			spin.Start()
			result, err := runner.Execute(cmd.Context(), opts)
			spin.Stop()
			if err != nil {
				return err
			}

			fmt.Print(string(result.Artifacts[pipeline.FormatSummary]))
			printStats(result.Stats.NodeCount, result.Stats.ElementCount, result.CacheInfo.ModelHit)

			written, err := writeArtifacts(outDir, result.Artifacts)
			if err != nil {
				return err
			}
			for _, path := range written {
				printFile(path)
			}
			if len(written) > 0 {
				printNextStep("Render a drawing", "framegen render --config "+displayPath(configPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (TOML)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for artifacts")
	cmd.Flags().StringVarP(&formats, "formats", "f", "nodes,elements", "comma-separated artifacts: nodes, elements, dot, svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include coordinates and section groups in DOT labels")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the model cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "regenerate even if a cached model exists")

	return cmd
}

// writeArtifacts stores every file-backed artifact under dir and returns the
// written paths. The summary is printed, not written.
func writeArtifacts(dir string, artifacts map[string][]byte) ([]string, error) {
	var written []string
	for _, format := range []string{pipeline.FormatNodes, pipeline.FormatElements, pipeline.FormatDOT, pipeline.FormatSVG} {
		name := artifactFiles[format]
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func displayPath(configPath string) string {
	if configPath == "" {
		return "<config.toml>"
	}
	return configPath
}
