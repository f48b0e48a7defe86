package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/cardstack/internal/config"
	"github.com/thenoetrevino/cardstack/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Column styles used by the board view
	ColumnStyle lipgloss.Style
	ColumnWidth = 28

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Column:", "Position:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Subtle)).
		Padding(0, 1).
		Width(ColumnWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderCardLine renders one card of a column listing
// Format: "2. #14 Title"
func RenderCardLine(card *models.CardSummary) string {
	return fmt.Sprintf("%s %s %s",
		SubtitleStyle.Render(fmt.Sprintf("%d.", card.Position)),
		LabelStyle.Render(fmt.Sprintf("#%d", card.ID)),
		ValueStyle.Render(card.Title))
}

// RenderColumn renders a column box with its cards in order
func RenderColumn(column *models.ColumnCards) string {
	header := TitleStyle.Render(column.Name) + " " +
		SubtitleStyle.Render(fmt.Sprintf("(%d)", len(column.Cards)))

	body := header + "\n"
	if len(column.Cards) == 0 {
		body += SubtitleStyle.Render("empty")
	}
	for i, card := range column.Cards {
		if i > 0 {
			body += "\n"
		}
		body += RenderCardLine(card)
	}

	return ColumnStyle.Render(body)
}

// RenderBoard lays columns out side by side
func RenderBoard(board []*models.ColumnCards) string {
	rendered := make([]string, 0, len(board))
	for _, column := range board {
		rendered = append(rendered, RenderColumn(column))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
