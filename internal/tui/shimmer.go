package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/balkashynov/contrast/internal/config"
)

// ShimmerConfig holds configuration for the banner sweep
type ShimmerConfig struct {
	Enabled        bool
	ReduceMotion   bool    // static highlight instead of animation
	SpeedMs        int     // tick interval
	WidthRatio     float64 // highlight width relative to the text
	CycleMs        int     // time for one sweep
	PauseBetweenMs int
}

// DefaultShimmerConfig returns default shimmer configuration
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:        true,
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// ShimmerConfigFrom applies the user's animation settings over the defaults
func ShimmerConfigFrom(cfg config.AnimationConfig) ShimmerConfig {
	sc := DefaultShimmerConfig()
	sc.Enabled = cfg.Enabled
	sc.ReduceMotion = cfg.ReduceMotion
	if cfg.SpeedMs > 0 {
		sc.SpeedMs = cfg.SpeedMs
	}
	return sc
}

// ShimmerState tracks where the highlight is on the banner
type ShimmerState struct {
	center   float64
	last     time.Time
	paused   bool
	pausedAt time.Time
	active   bool
	config   ShimmerConfig

	base      colorful.Color
	highlight colorful.Color
}

// NewShimmerState creates a new shimmer state
func NewShimmerState(cfg ShimmerConfig) *ShimmerState {
	if cfg.SpeedMs <= 0 {
		cfg.SpeedMs = DefaultShimmerConfig().SpeedMs
	}
	return &ShimmerState{
		last:      time.Now(),
		active:    cfg.Enabled && !cfg.ReduceMotion,
		config:    cfg,
		base:      mustHex(ColorSecondary),
		highlight: mustHex(ColorShimmer),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// Advance moves the highlight for a text of length runes.
// The sweep starts before the text, runs past its end, then pauses.
func (s *ShimmerState) Advance(now time.Time, length int) {
	if !s.active || length <= 0 {
		return
	}
	if now.Sub(s.last) < s.Interval() {
		return
	}

	margin := float64(length) * s.config.WidthRatio

	if s.paused {
		if now.Sub(s.pausedAt) >= time.Duration(s.config.PauseBetweenMs)*time.Millisecond {
			s.paused = false
			s.center = -margin
		}
		s.last = now
		return
	}

	ticksPerCycle := float64(s.config.CycleMs) / float64(s.config.SpeedMs)
	if ticksPerCycle < 1 {
		ticksPerCycle = 1
	}
	s.center += (float64(length) + 2*margin) / ticksPerCycle

	if end := float64(length) + margin; s.center >= end {
		s.center = end
		s.paused = true
		s.pausedAt = now
	}
	s.last = now
}

// Reset puts the highlight back at the start
func (s *ShimmerState) Reset() {
	s.center = 0
	s.last = time.Now()
	s.paused = false
	s.pausedAt = time.Time{}
}

// Render draws text with the highlight blended in at the current position
func (s *ShimmerState) Render(text string) string {
	if text == "" {
		return ""
	}
	if !s.active {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true).Render(text)
	}

	runes := []rune(text)
	s.Advance(time.Now(), len(runes))

	sigma := s.config.WidthRatio * float64(len(runes)) / 2.0
	if sigma < 1.0 {
		sigma = 1.0
	}

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.center
		weight := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		c := s.base.BlendRgb(s.highlight, weight).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Bold(true).
			Render(string(r)))
	}
	return b.String()
}

// Interval returns the tick interval for tea.Tick
func (s *ShimmerState) Interval() time.Duration {
	return time.Duration(s.config.SpeedMs) * time.Millisecond
}

// ShouldTick returns true while the banner is animated
func (s *ShimmerState) ShouldTick() bool {
	return s.active
}
