package tui

// Color constants for the contrast TUI theme
const (
	ColorBorder      = "#3A3F55" // Grey-blue, unfocused panels
	ColorPrimaryText = "#E6EAF2" // Labels, user input
	ColorSecondary   = "#B1B8C7" // Subtle purple-tinted grey, also the shimmer base
	ColorPlaceholder = "#6D7383" // Muted text
	ColorHelpText    = "240"     // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Focused panel border, selected size
	ColorAccentBright = "#A78BFA" // Cursor, banner when motion is reduced
	ColorShimmer      = "#EAE6FF" // Peak of the banner sweep

	// Verdict Colors
	ColorPass  = "#22C55E"
	ColorFail  = "#EF4444"
	ColorError = "#F59E0B" // Inline validation hints
)
