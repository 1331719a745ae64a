package color

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Mode selects how color resolution behaves.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode validates a user- or config-supplied color mode string.
// The empty string means ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeAlways, ModeNever:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid color mode %q (expected auto, always or never)", s)
	}
}

// For mocking in tests
var osGetenv = os.Getenv
var stdoutIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Resolve reports whether styled output should be produced for the
// given mode. NO_COLOR wins over everything except an explicit
// ModeAlways.
func Resolve(mode Mode) bool {
	if osGetenv("NO_COLOR") != "" && mode != ModeAlways {
		return false
	}
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return stdoutIsTerminal()
	}
}

// Palette holds the semantic styles the demo renders with.
type Palette struct {
	Narration  lipgloss.Style // client commentary
	Default    lipgloss.Style // the Target's plain response
	Raw        lipgloss.Style // the Adaptee's untranslated output
	Translated lipgloss.Style // the Adapter's restored output
	Title      lipgloss.Style // walkthrough header
	Muted      lipgloss.Style // walkthrough help footer
}

// NewPalette builds the demo styles. With enabled false every style is
// a no-op, so Render returns its input unchanged.
func NewPalette(enabled bool) Palette {
	if !enabled {
		plain := lipgloss.NewStyle()
		return Palette{
			Narration:  plain,
			Default:    plain,
			Raw:        plain,
			Translated: plain,
			Title:      plain,
			Muted:      plain,
		}
	}
	return Palette{
		Narration:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // blue
		Default:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),            // light grey
		Raw:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // amber
		Translated: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),             // green
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")), // magenta
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),            // dark grey
	}
}
