package demo

import (
	"fmt"
	"io"

	"adaptkit/internal/color"
	"adaptkit/pkg/logging"
	"github.com/charmbracelet/lipgloss"
)

// Runner writes the demo transcript to an output writer, one labeled
// block per section with a blank line between blocks.
type Runner struct {
	out     io.Writer
	palette color.Palette
}

// NewRunner creates a Runner rendering with the given palette.
func NewRunner(out io.Writer, palette color.Palette) *Runner {
	return &Runner{out: out, palette: palette}
}

// Run renders every section in order. The only possible errors are
// write errors on the underlying writer.
func (r *Runner) Run(sections []Section) error {
	logging.Debug("demo", "Rendering transcript with %d sections", len(sections))

	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(r.out); err != nil {
				return fmt.Errorf("writing transcript: %w", err)
			}
		}
		if _, err := fmt.Fprintln(r.out, r.palette.Narration.Render(section.Narration)); err != nil {
			return fmt.Errorf("writing transcript: %w", err)
		}
		if _, err := fmt.Fprintln(r.out, r.bodyStyle(section.Kind).Render(section.Body)); err != nil {
			return fmt.Errorf("writing transcript: %w", err)
		}
	}
	return nil
}

func (r *Runner) bodyStyle(kind SectionKind) lipgloss.Style {
	switch kind {
	case KindRaw:
		return r.palette.Raw
	case KindTranslated:
		return r.palette.Translated
	default:
		return r.palette.Default
	}
}
