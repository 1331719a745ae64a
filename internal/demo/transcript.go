// Package demo produces the adapter pattern demonstration: a fixed,
// three-block transcript showing the Target's default behavior, the
// Adaptee's incompatible raw output, and the Adapter bridging the two.
// The same sections drive both the plain runner and the interactive
// walkthrough.
package demo

import "adaptkit/internal/adapters"

// SectionKind tells the renderer which semantic style a section's body
// takes.
type SectionKind int

const (
	KindDefault    SectionKind = iota // the Target's plain response
	KindRaw                           // the Adaptee's untranslated output
	KindTranslated                    // the Adapter's restored output
)

// Section is one labeled block of the demo transcript: a line of client
// narration followed by the response it introduces.
type Section struct {
	Narration string
	Body      string
	Kind      SectionKind
}

// Transcript builds the three demo sections. The sentence is what the
// Adaptee stores reversed; an empty sentence yields the canonical
// transcript.
func Transcript(sentence string) []Section {
	target := adapters.DefaultTarget{}
	adaptee := adapters.NewAdapteeFromSentence(sentence)
	adapter := adapters.NewAdapter(adaptee)

	return []Section{
		{
			Narration: "Client: I can work just fine with the Target objects:",
			Body:      target.Request(),
			Kind:      KindDefault,
		},
		{
			Narration: "Client: The Adaptee class has a weird interface. See, I don't understand it:",
			Body:      "Adaptee: " + adaptee.SpecificRequest(),
			Kind:      KindRaw,
		},
		{
			Narration: "Client: But I can work with it via the Adapter:",
			Body:      adapter.Request(),
			Kind:      KindTranslated,
		},
	}
}
