package models

import (
	"fmt"

	"github.com/balkashynov/contrast/internal/color"
	"github.com/balkashynov/contrast/internal/parser"
)

// Role identifies which of the two colors is being edited
type Role int

const (
	Text Role = iota
	Background
)

// String returns the panel title for the role
func (r Role) String() string {
	if r == Background {
		return "Background Color"
	}
	return "Text Color"
}

// Session is the live state of a contrast check: two colors, a text size,
// and the display format of each color. Every mutation recomputes the result.
// A Session is owned by a single goroutine.
type Session struct {
	colors  [2]color.RGB
	formats [2]parser.Format
	size    color.TextSize
	result  color.Result
}

// NewSession creates a session and computes its initial result
func NewSession(text, background color.RGB, size color.TextSize) *Session {
	s := &Session{
		colors: [2]color.RGB{text, background},
		size:   size,
	}
	s.refresh()
	return s
}

// SetColor parses input in the given format and assigns it to role.
// On malformed input the previous color is kept and the parse error returned.
func (s *Session) SetColor(role Role, input string, format parser.Format) error {
	rgb, err := parser.Parse(input, format)
	if err != nil {
		return fmt.Errorf("%s: %w", role, err)
	}
	s.SetRGB(role, rgb)
	return nil
}

// SetRGB assigns an already structured color
func (s *Session) SetRGB(role Role, rgb color.RGB) {
	s.colors[role] = rgb
	s.refresh()
}

// SetSize changes the text size category
func (s *Session) SetSize(size color.TextSize) {
	s.size = size
	s.refresh()
}

// ToggleSize flips between large and normal text
func (s *Session) ToggleSize() {
	s.SetSize(s.size.Toggle())
}

// SetFormat changes how a color is displayed; the color itself is unchanged
func (s *Session) SetFormat(role Role, format parser.Format) {
	s.formats[role] = format
}

// CycleFormat moves the role to its next display format
func (s *Session) CycleFormat(role Role) parser.Format {
	s.formats[role] = s.formats[role].Next()
	return s.formats[role]
}

// Swap exchanges text and background colors along with their formats
func (s *Session) Swap() {
	s.colors[Text], s.colors[Background] = s.colors[Background], s.colors[Text]
	s.formats[Text], s.formats[Background] = s.formats[Background], s.formats[Text]
	s.refresh()
}

// Color returns the current color for role
func (s *Session) Color(role Role) color.RGB {
	return s.colors[role]
}

// Format returns the display format for role
func (s *Session) Format(role Role) parser.Format {
	return s.formats[role]
}

// Display renders the color for role in its display format
func (s *Session) Display(role Role) string {
	return parser.FormatColor(s.colors[role], s.formats[role])
}

// Size returns the text size category
func (s *Session) Size() color.TextSize {
	return s.size
}

// Result returns the contrast result for the current colors and size
func (s *Session) Result() color.Result {
	return s.result
}

func (s *Session) refresh() {
	s.result = color.Calculate(s.colors[Text], s.colors[Background], s.size)
}
