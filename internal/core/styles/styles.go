// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Primary:    lipgloss.Color("#89b4fa"), // Blue
		Secondary:  lipgloss.Color("#94e2d5"), // Teal
		Foreground: lipgloss.Color("#cdd6f4"), // Text
		Muted:      lipgloss.Color("#6c7086"), // Overlay0
		Background: lipgloss.Color("#1e1e2e"), // Base
		Surface:    lipgloss.Color("#313244"), // Surface0
		Success:    lipgloss.Color("#a6e3a1"), // Green
		Warning:    lipgloss.Color("#f9e2af"), // Yellow
		Error:      lipgloss.Color("#f38ba8"), // Red
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	// CLI styles.
	HeaderStyle  lipgloss.Style
	IndexStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// TUI styles.
	FrameStyle        lipgloss.Style
	TitleStyle        lipgloss.Style
	ItemStyle         lipgloss.Style
	ItemSelectedStyle lipgloss.Style
	ItemDoneStyle     lipgloss.Style
	EmptyStyle        lipgloss.Style
	TextMutedStyle    lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style

	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	IndexStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	SuccessStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error)

	FrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Secondary).
		Padding(1, 2)
	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)
	ItemStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	ItemSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)
	ItemDoneStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)
	EmptyStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Warning)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Muted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(p.Primary).
		PaddingLeft(1)

	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	HelpDescStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	hex := string(c)
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	p := CurrentPalette

	fg := colorHexPtr(p.Foreground)
	primary := colorHexPtr(p.Primary)
	secondary := colorHexPtr(p.Secondary)
	muted := colorHexPtr(p.Muted)

	noMargin := uint(0)
	cfg.Document.Margin = &noMargin
	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = colorHexPtr(p.Surface)

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
