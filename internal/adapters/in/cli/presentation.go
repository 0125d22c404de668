package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/bnema/cronfile/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/cronfile/internal/domain"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

var cliWritef = func(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

func cliRenderMuted(msg string) string {
	return styles.Theme.Muted.Render(msg)
}

func cliRenderEmptyState(msg string) string {
	return cliRenderMuted(msg)
}

func cliRenderListItem(msg string) string {
	return styles.RenderListItem(msg)
}

func cliRenderMeta(label, value string) string {
	return styles.Theme.Bold.Render(label) + " " + styles.Theme.Muted.Render(value)
}

func cliRenderCode(msg string) string {
	return styles.Theme.Code.Render(msg)
}

func cliRenderSuccess(msg string) string {
	return styles.RenderSuccess(msg)
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

func cliRenderError(msg string) string {
	return styles.RenderError(msg)
}

func cliRenderInfo(msg string) string {
	return styles.RenderInfo(msg)
}

func cliRenderBox(msg string) string {
	return styles.Theme.Box.Render(strings.TrimRight(msg, "\n"))
}

// describeError adds a hint for the errors users can act on.
func describeError(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, domain.ErrNotWritable):
		return msg + " (check the file permissions)"
	case errors.Is(err, domain.ErrAmbiguousHash):
		return msg + " (use a longer hash prefix)"
	case errors.Is(err, domain.ErrJobNotFound):
		return msg + " (run 'cronfile list' to see job hashes)"
	case errors.Is(err, domain.ErrMalformedLine), errors.Is(err, domain.ErrInvalidField):
		return msg + " (run 'cronfile lint' for every problem in the file)"
	default:
		return msg
	}
}
