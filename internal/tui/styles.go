package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan: primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold: overdraw
	colorSuccess     = lipgloss.Color("#00E676") // Green: attached
	colorDanger      = lipgloss.Color("#FF5252") // Red: errors
	colorMuted       = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorSurface     = lipgloss.Color("#1E1E2E") // Dark surface: status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // Darkest surface: footer bg
	colorRearSurface = lipgloss.Color("#23314A") // Rear pane bg
	colorRightSurf   = lipgloss.Color("#3A2A44") // Right pane bg
	colorFrontSurf   = lipgloss.Color("#2A2A3C") // Front pane bg
)

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleStatusOverdraw = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	styleStatusError = lipgloss.NewStyle().
				Foreground(colorDanger)
)

// Pane styles. The front pane carries vertical edges so its position is
// visible while the back panes share its colors.
var (
	styleRearPane = lipgloss.NewStyle().
			Background(colorRearSurface).
			Foreground(colorWhite).
			Padding(0, 1)

	styleRightPane = lipgloss.NewStyle().
			Background(colorRightSurf).
			Foreground(colorWhite).
			Padding(0, 1)

	styleFrontPane = lipgloss.NewStyle().
			Background(colorFrontSurf).
			Foreground(colorMutedLight).
			Border(lipgloss.NormalBorder(), false, true, false, true).
			BorderForeground(colorPrimary)

	stylePaneTitle = lipgloss.NewStyle().
			Bold(true)

	stylePaneAttached = lipgloss.NewStyle().
				Foreground(colorSuccess)

	stylePaneDetached = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)
)

// Footer styles: top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
