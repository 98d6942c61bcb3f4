package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/IVANSLASH/framegen/pkg/pipeline"
)

// presetsCommand creates the interactive preset picker command.
func (c *CLI) presetsCommand() *cobra.Command {
	var (
		outDir  string
		formats string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Pick a preset building interactively and generate it",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := NewPresetListModel(Presets())
			prog := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("preset picker: %w", err)
			}

			selected := final.(PresetListModel).Selected
			if selected == nil {
				printInfo("No preset selected")
				return nil
			}
			printInfo("Generating preset %q", selected.Name)

			cfg := selected.Config
			opts := pipeline.Options{
				Config:  &cfg,
				Formats: append([]string{pipeline.FormatSummary}, parseFormats(formats)...),
				Logger:  c.Logger,
			}

			runner := c.newRunner(noCache)
			defer runner.Close()

			result, err := runner.Execute(cmd.Context(), opts)
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
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for artifacts")
	cmd.Flags().StringVarP(&formats, "formats", "f", "nodes,elements", "comma-separated artifacts: nodes, elements, dot, svg")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the model cache")

	return cmd
}
