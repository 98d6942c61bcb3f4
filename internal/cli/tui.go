package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/IVANSLASH/framegen/pkg/config"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Preset is one ready-made building geometry offered by the picker.
type Preset struct {
	Name        string
	Description string
	Config      config.Config
}

// Presets returns the built-in building geometries.
func Presets() []Preset {
	compact := config.Config{
		Bays: config.Bays{
			X: 2, Y: 2,
			WidthsX: []float64{5, 5},
			WidthsY: []float64{4, 4},
		},
		Stories: config.Stories{Count: 2, Heights: []float64{3, 3}},
		Beams:   config.Dim{Width: 0.25, Depth: 0.45},
		Columns: config.Columns{Type: "uniform", Section: config.Dim{Width: 0.3, Depth: 0.3}},
	}

	balcony := config.Default()
	balcony.Cantilevers.Front = &config.SideCfg{Length: 0.9}

	tower := config.Config{
		Bays: config.Bays{
			X: 4, Y: 3,
			WidthsX: []float64{6, 6, 6, 6},
			WidthsY: []float64{5, 5, 5},
		},
		Stories: config.Stories{Count: 8, Heights: []float64{4, 3.2, 3.2, 3.2, 3.2, 3.2, 3.2, 3.2}},
		Beams:   config.Dim{Width: 0.3, Depth: 0.5},
		Columns: config.Columns{
			Type:     "exterior-interior",
			Exterior: config.Dim{Width: 0.4, Depth: 0.4},
			Interior: config.Dim{Width: 0.5, Depth: 0.5},
		},
	}

	wrap := config.Default()
	wrap.Cantilevers.Right = &config.SideCfg{Length: 0.8}
	wrap.Cantilevers.Left = &config.SideCfg{Length: 0.8}

	return []Preset{
		{Name: "compact", Description: "2x2 bays, 2 stories, uniform columns", Config: compact},
		{Name: "standard", Description: "3x3 bays, 3 stories, stock geometry", Config: config.Default()},
		{Name: "balcony", Description: "standard geometry with a 0.9m front overhang", Config: balcony},
		{Name: "wrap", Description: "standard geometry with overhangs on both lateral sides", Config: wrap},
		{Name: "tower", Description: "4x3 bays, 8 stories, exterior-interior columns", Config: tower},
	}
}

// PresetListModel is the bubbletea model for interactive preset selection.
type PresetListModel struct {
	Presets  []Preset
	Cursor   int
	Selected *Preset
}

// NewPresetListModel creates a new preset list model.
func NewPresetListModel(presets []Preset) PresetListModel {
	return PresetListModel{Presets: presets}
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Presets[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Building Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("up/down: navigate  enter: select  q: quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, p := range m.Presets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}
		cfg := p.Config
		rows = append(rows, []string{
			cursor,
			p.Name,
			fmt.Sprintf("%dx%d", cfg.Bays.X, cfg.Bays.Y),
			fmt.Sprintf("%d", cfg.Stories.Count),
			cantileverSummary(cfg.Cantilevers),
			p.Description,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Preset", "Bays", "Stories", "Overhangs", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			if col >= 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Presets))))

	return b.String()
}

// cantileverSummary lists the active sides, e.g. "front" or "right+left".
func cantileverSummary(c config.Cantilevers) string {
	var sides []string
	if c.Front != nil {
		sides = append(sides, "front")
	}
	if c.Right != nil {
		sides = append(sides, "right")
	}
	if c.Left != nil {
		sides = append(sides, "left")
	}
	if len(sides) == 0 {
		return "none"
	}
	return strings.Join(sides, "+")
}
