package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/IVANSLASH/framegen/pkg/lattice"
	"github.com/IVANSLASH/framegen/pkg/loads"
	"github.com/IVANSLASH/framegen/pkg/pipeline"
)

// reportCommand creates the report command.
func (c *CLI) reportCommand() *cobra.Command {
	var (
		configPath string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the generation summary, stability review, and load cases",
		Example: `  framegen report
  framegen report --config building.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Config:  &cfg,
				Formats: []string{pipeline.FormatSummary},
				Logger:  c.Logger,
			}

			runner := c.newRunner(noCache)
			defer runner.Close()

			prog := newProgress(c.Logger)
			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Model ready: %d nodes, %d elements",
				result.Stats.NodeCount, result.Stats.ElementCount))

			fmt.Println(StyleTitle.Render("Model Report"))
			printNewline()
			fmt.Print(string(result.Artifacts[pipeline.FormatSummary]))
			printNewline()

			printCantilevers(result.Spec.Cantilevers, result.Findings)
			printLoadTable()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (TOML)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the model cache")

	return cmd
}

// printCantilevers lists the configured overhangs and any stability findings.
func printCantilevers(cants lattice.Cantilevers, findings []lattice.Finding) {
	if !cants.Active() {
		return
	}
	fmt.Println(StyleTitle.Render("Cantilevers"))
	for _, side := range []lattice.Side{lattice.SideFront, lattice.SideRight, lattice.SideLeft} {
		cfg := cants.Get(side)
		if cfg == nil {
			continue
		}
		printKeyValue(side.String(), fmt.Sprintf("%.2fm span, edge beam group %d", cfg.Length, cfg.EdgeBeamSection))
	}
	for _, f := range findings {
		printWarning("%s", f.Message)
	}
	printNewline()
}

// printLoadTable renders the standard load combinations with the stock slab
// intensities reduced to equivalent area loads.
func printLoadTable() {
	in := loads.DefaultIntensity()

	rows := [][]string{}
	for _, combo := range loads.Standard() {
		kind := "strength"
		if combo.Service {
			kind = "service"
		}
		rows = append(rows, []string{
			combo.ID,
			combo.Name,
			combo.String(),
			kind,
			fmt.Sprintf("%.2f kN/m²", loads.Factored(combo, in)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Equation", "Type", "Factored").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(StyleTitle.Render("Load Combinations"))
	fmt.Printf("dead %.1f kN/m², live %.1f kN/m²\n", in.Dead, in.Live)
	fmt.Println(t.Render())
}
