package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/contrast/internal/models"
	"github.com/balkashynov/contrast/internal/parser"
)

// RunCheckTUI starts the interactive checker and prints the final colors on exit
func RunCheckTUI(session *models.Session, opts Options) error {
	model := NewCheckModel(session, opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(CheckModel); ok {
		fmt.Println(Summary(m.Session()))
	}
	return nil
}

// Summary is the one-line report printed after the TUI closes
func Summary(s *models.Session) string {
	result := s.Result()
	verdict := "❌ not accessible"
	if result.IsAccessible {
		verdict = "✅ accessible"
	}
	return fmt.Sprintf("%s on %s: ratio %s, %s for %s text",
		parser.FormatColor(s.Color(models.Text), parser.FormatHex),
		parser.FormatColor(s.Color(models.Background), parser.FormatHex),
		parser.FormatRatio(result.Ratio),
		verdict,
		s.Size())
}
