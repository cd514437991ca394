package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/balkashynov/contrast/internal/color"
	"github.com/balkashynov/contrast/internal/models"
	"github.com/balkashynov/contrast/internal/parser"
)

const (
	bannerText = "Text Contrast Accessibility"

	// Terminals at least this wide get side-by-side panels and the long sample
	wideLayoutWidth = 100

	panelWidth = 40

	loremLong  = `"Lorem ipsum dolor sit amet consectetur adipisicing elit..."`
	loremShort = `"Lorem ipsum..."`
)

var roles = [2]models.Role{models.Text, models.Background}

// Options configures the check TUI
type Options struct {
	Shimmer ShimmerConfig
	Log     *zap.Logger
}

// CheckModel is the interactive two-color contrast checker
type CheckModel struct {
	session *models.Session
	inputs  [2]textinput.Model
	focus   models.Role

	// Per-role hint shown under the input after a rejected commit
	hints [2]string

	width  int
	height int

	shimmer  *ShimmerState
	log      *zap.Logger
	quitting bool
}

// shimmerTickMsg is sent when the banner should move
type shimmerTickMsg struct{}

// NewCheckModel creates the TUI model around an existing session
func NewCheckModel(session *models.Session, opts Options) CheckModel {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	var inputs [2]textinput.Model
	for _, role := range roles {
		in := textinput.New()
		in.Width = panelWidth - 6
		in.CharLimit = 40
		in.Prompt = "› "
		in.Placeholder = "#rrggbb, rgb(r, g, b) or hsl(h, s%, l%)"
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		in.SetValue(session.Display(role))
		inputs[role] = in
	}
	inputs[models.Text].Focus()

	return CheckModel{
		session: session,
		inputs:  inputs,
		focus:   models.Text,
		shimmer: NewShimmerState(opts.Shimmer),
		log:     log,
	}
}

// Session returns the session the model edits
func (m CheckModel) Session() *models.Session {
	return m.session
}

// Init starts cursor blinking and the banner animation
func (m CheckModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.shimmer.ShouldTick() {
		cmds = append(cmds, m.tick())
	}
	return tea.Batch(cmds...)
}

func (m CheckModel) tick() tea.Cmd {
	return tea.Tick(m.shimmer.Interval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Update handles messages
func (m CheckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if m.shimmer.ShouldTick() {
			return m, m.tick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			return m.switchFocus()

		case "enter":
			m.commit(m.focus)
			return m, nil

		case "ctrl+f":
			format := m.session.CycleFormat(m.focus)
			m.hints[m.focus] = ""
			m.resetInput(m.focus)
			m.log.Debug("display format changed",
				zap.Stringer("role", m.focus),
				zap.Stringer("format", format))
			return m, nil

		case "ctrl+t":
			m.session.ToggleSize()
			m.log.Debug("text size changed", zap.Stringer("size", m.session.Size()))
			return m, nil

		case "ctrl+x":
			m.session.Swap()
			m.hints = [2]string{}
			for _, role := range roles {
				m.resetInput(role)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.applyLive(m.focus)
	}
	return m, cmd
}

// applyLive updates the color on every keystroke that forms a valid color.
// Half-typed values are expected, so failures are silent.
func (m *CheckModel) applyLive(role models.Role) {
	if err := m.session.SetColor(role, m.inputs[role].Value(), m.session.Format(role)); err == nil {
		m.hints[role] = ""
	}
}

// commit validates the field; a valid value is rewritten in canonical form,
// an invalid one gets a hint and the previous color stays in effect
func (m *CheckModel) commit(role models.Role) bool {
	value := m.inputs[role].Value()
	if err := m.session.SetColor(role, value, m.session.Format(role)); err != nil {
		m.hints[role] = fmt.Sprintf("Not a valid %s color, keeping %s", m.session.Format(role), m.session.Display(role))
		m.log.Debug("rejected color input",
			zap.Stringer("role", role),
			zap.String("input", value),
			zap.Error(err))
		return false
	}
	m.hints[role] = ""
	m.resetInput(role)
	return true
}

func (m CheckModel) switchFocus() (CheckModel, tea.Cmd) {
	if !m.commit(m.focus) {
		m.resetInput(m.focus)
	}
	m.inputs[m.focus].Blur()
	if m.focus == models.Text {
		m.focus = models.Background
	} else {
		m.focus = models.Text
	}
	return m, m.inputs[m.focus].Focus()
}

func (m *CheckModel) resetInput(role models.Role) {
	m.inputs[role].SetValue(m.session.Display(role))
	m.inputs[role].CursorEnd()
}

func (m CheckModel) wide() bool {
	return m.width >= wideLayoutWidth
}

// View renders the TUI
func (m CheckModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.shimmer.Render(bannerText))
	b.WriteString("\n\n")
	b.WriteString(m.renderSizeSelector())
	b.WriteString("\n\n")

	text := m.renderPanel(models.Text)
	background := m.renderPanel(models.Background)
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, text, "  ", background))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, text, background))
	}
	b.WriteString("\n")

	b.WriteString(m.renderPreview())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("Tab: switch color | Enter: apply | Ctrl+F: Hex/RGB/HSL | Ctrl+T: text size | Ctrl+X: swap | Esc: quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m CheckModel) renderSizeSelector() string {
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))

	option := func(size color.TextSize, label string) string {
		if m.session.Size() == size {
			return selected.Render("● " + label)
		}
		return muted.Render("○ " + label)
	}

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Render("Text Size")
	return fmt.Sprintf("%s  %s  %s", label, option(color.Large, "Large text"), option(color.Normal, "Normal text"))
}

func (m CheckModel) renderPanel(role models.Role) string {
	borderColor := ColorBorder
	if role == m.focus {
		borderColor = ColorAccentMain
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).Render(role.String())
	format := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondary)).Render("[" + m.session.Format(role).String() + "]")
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(m.session.Color(role).Hex())).
		Render(strings.Repeat(" ", 4))

	b.WriteString(fmt.Sprintf("%s %s %s\n", swatch, title, format))
	b.WriteString(m.inputs[role].View())

	if hint := m.hints[role]; hint != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(hint))
	}

	return lipgloss.NewStyle().
		Width(panelWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Render(b.String())
}

func (m CheckModel) renderPreview() string {
	width := panelWidth
	sample := loremShort
	if m.wide() {
		width = panelWidth*2 + 4
		sample = loremLong
	}
	sample = runewidth.Truncate(sample, width-4, "...")

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.session.Color(models.Text).Hex())).
		Background(lipgloss.Color(m.session.Color(models.Background).Hex())).
		Width(width).
		Padding(1, 2).
		Render(sample)
}

func (m CheckModel) renderFooter() string {
	result := m.session.Result()

	ratio := fmt.Sprintf("Contrast Ratio: %s", parser.FormatRatio(result.Ratio))
	need := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Render(fmt.Sprintf("(%s text needs %s)", m.session.Size(), parser.FormatRatio(m.session.Size().Threshold())))

	verdict := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFail)).Bold(true).Render("Not Accessible!")
	if result.IsAccessible {
		verdict = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPass)).Bold(true).Render("Accessible!")
	}

	return ratio + " " + need + "\n" + verdict
}
