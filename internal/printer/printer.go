// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/tuidolist/internal/core/styles"
)

type ctxKey struct{}

// Printer writes human readable command output. Errors and warnings go to
// errOut, everything else to out.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a printer over the given writers.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// NewContext returns a context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stdout/stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Infof writes a muted informational line.
func (p *Printer) Infof(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.TextMutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Successf writes a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, styles.SuccessStyle.Render(styles.IconDone+" "+fmt.Sprintf(format, args...)))
}

// Warnf writes a warning line to errOut.
func (p *Printer) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.errOut, styles.TitleStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Errorf writes an error line to errOut.
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.errOut, styles.ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}
