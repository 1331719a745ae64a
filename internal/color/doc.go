// Package color provides terminal color resolution and the lipgloss
// styles adaptkit uses for its demo output.
//
// # Color Resolution
//
// Whether styled output is produced depends on, in order:
//   - the NO_COLOR environment variable (disables colors unless the
//     mode is "always")
//   - the configured mode: "always", "never", or "auto"
//   - for "auto", whether stdout is a terminal
//
// # Styles
//
// Styles are organized into semantic categories rather than raw colors:
//   - Narration: the client-code commentary lines
//   - Raw: the Adaptee's untranslated output (caution)
//   - Translated: the Adapter's restored output (success)
//   - Title / Muted: interactive walkthrough chrome
//
// With colors disabled every style renders its input unchanged, so
// plain-mode output is byte-stable and testable.
package color
