package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/colonyops/tuidolist/internal/core/styles"
)

// markdownRenderer renders item descriptions, reusing the glamour renderer
// until the wrap width changes.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

func (r *markdownRenderer) Render(text string, width int) (string, error) {
	if r.renderer == nil || r.width != width {
		opts := []glamour.TermRendererOption{glamour.WithStyles(styles.GlamourStyle())}
		if width > 0 {
			opts = append(opts, glamour.WithWordWrap(width))
		}

		renderer, err := glamour.NewTermRenderer(opts...)
		if err != nil {
			return "", err
		}
		r.renderer = renderer
		r.width = width
	}

	out, err := r.renderer.Render(text)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
