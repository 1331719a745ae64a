package adapters

// DefaultSentence is the natural-order sentence the canonical Adaptee
// serves back-to-front.
const DefaultSentence = "Special behavior of the Adaptee."

// Adaptee contains some useful behavior, but its interface is
// incompatible with the existing client code: SpecificRequest serves its
// sentence with the characters in reverse order, so callers need some
// adaptation before the value is usable.
//
// The zero value serves DefaultSentence reversed.
type Adaptee struct {
	// payload holds the sentence already reversed, the way the Adaptee
	// "stores" its data internally. Empty means the canonical default.
	payload string
}

// NewAdaptee returns the canonical Adaptee serving DefaultSentence
// back-to-front.
func NewAdaptee() *Adaptee {
	return &Adaptee{}
}

// NewAdapteeFromSentence returns an Adaptee that stores the given
// natural-order sentence reversed, preserving the incompatible output
// shape for arbitrary content.
func NewAdapteeFromSentence(sentence string) *Adaptee {
	return &Adaptee{payload: Reverse(sentence)}
}

// SpecificRequest returns the stored sentence in reverse character
// order. Deterministic: repeated calls yield byte-identical results.
func (a *Adaptee) SpecificRequest() string {
	if a.payload == "" {
		return Reverse(DefaultSentence)
	}
	return a.payload
}
