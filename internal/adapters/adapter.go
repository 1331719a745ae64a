package adapters

// TranslationMarker prefixes every response the Adapter has translated
// from its Adaptee.
const TranslationMarker = "Adapter: (TRANSLATED) "

// Adapter makes the Adaptee's interface compatible with Target. It holds
// the Adaptee by composition; the Adaptee is unaware of the wrapping.
type Adapter struct {
	adaptee *Adaptee
}

// Adapter must keep satisfying Target.
var _ Target = (*Adapter)(nil)

// NewAdapter creates an Adapter around the given Adaptee. A nil adaptee
// falls back to the canonical one, keeping the constructor total.
func NewAdapter(adaptee *Adaptee) *Adapter {
	if adaptee == nil {
		adaptee = NewAdaptee()
	}
	return &Adapter{adaptee: adaptee}
}

// Request satisfies Target by delegating to the Adaptee's
// SpecificRequest, restoring natural reading order and prefixing the
// translation marker.
func (a *Adapter) Request() string {
	return TranslationMarker + Reverse(a.adaptee.SpecificRequest())
}

// Reverse returns s with its runes in reverse order. Reversal is
// rune-aware, so multibyte text survives a double reversal intact.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
