package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciiviz/pkg/dataset"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// =============================================================================
// SampleBrowserModel - Interactive sample browser
// =============================================================================

// SampleBrowserModel is the bubbletea model for browsing the built-in samples.
type SampleBrowserModel struct {
	Samples []dataset.Sample
	Cursor  int
}

// NewSampleBrowserModel creates a browser over samples.
func NewSampleBrowserModel(samples []dataset.Sample) SampleBrowserModel {
	return SampleBrowserModel{Samples: samples}
}

func (m SampleBrowserModel) Init() tea.Cmd {
	return nil
}

func (m SampleBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Samples)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			if len(m.Samples) > 0 {
				m.Cursor = len(m.Samples) - 1
			}
		}
	}
	return m, nil
}

func (m SampleBrowserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Samples"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.Samples) == 0 {
		b.WriteString(listDimStyle.Render("No samples"))
		return b.String()
	}

	rows := make([][]string, len(m.Samples))
	for i, s := range m.Samples {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = []string{cursor, string(s.Type)}
	}

	list := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Type").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			if row == m.Cursor {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.Render(), " ", m.preview()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Samples))))

	return b.String()
}

// preview renders the selected sample inside a bordered box.
func (m SampleBrowserModel) preview() string {
	s := m.Samples[m.Cursor]
	text, err := s.Render()
	if err != nil {
		text = styleIconError.Render(iconError) + " " + err.Error()
	}
	title := StyleTitle.Render(s.Title) + "\n" + listDimStyle.Render(s.Type.Description())
	return previewStyle.Render(title + "\n\n" + strings.TrimRight(text, "\n"))
}

// browseCommand creates the browse command that opens the sample browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the built-in samples interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(
				NewSampleBrowserModel(dataset.Samples()),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			return nil
		},
	}
}
