package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTarget_Request(t *testing.T) {
	target := DefaultTarget{}

	assert.Equal(t, "Target: The default target's behavior.", target.Request())

	// Idempotence: repeated calls yield byte-identical results.
	for i := 0; i < 3; i++ {
		assert.Equal(t, DefaultTargetResponse, target.Request())
	}
}

func TestAdaptee_SpecificRequest(t *testing.T) {
	adaptee := NewAdaptee()

	assert.Equal(t, ".eetpadA eht fo roivaheb laicepS", adaptee.SpecificRequest())

	// Deterministic across calls, no hidden state mutation.
	first := adaptee.SpecificRequest()
	assert.Equal(t, first, adaptee.SpecificRequest())
}

func TestAdaptee_ZeroValue(t *testing.T) {
	var adaptee Adaptee
	assert.Equal(t, Reverse(DefaultSentence), adaptee.SpecificRequest())
}

func TestAdapteeFromSentence(t *testing.T) {
	adaptee := NewAdapteeFromSentence("Hello from the other side.")

	assert.Equal(t, ".edis rehto eht morf olleH", adaptee.SpecificRequest())
}

func TestAdapter_Request(t *testing.T) {
	adapter := NewAdapter(NewAdaptee())

	assert.Equal(t, "Adapter: (TRANSLATED) Special behavior of the Adaptee.", adapter.Request())
}

func TestAdapter_TranslatesArbitrarySentences(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
	}{
		{"canonical", "Special behavior of the Adaptee."},
		{"custom", "Anything the adaptee stores comes back readable."},
		{"multibyte", "Grüße aus München — 日本語もOK."},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adaptee := NewAdapteeFromSentence(tt.sentence)
			adapter := NewAdapter(adaptee)

			want := TranslationMarker + tt.sentence
			if tt.sentence == "" {
				// An empty payload means the canonical default.
				want = TranslationMarker + DefaultSentence
			}
			assert.Equal(t, want, adapter.Request())
		})
	}
}

func TestAdapter_SatisfiesTarget(t *testing.T) {
	// The client code only ever sees the Target interface.
	var target Target = NewAdapter(NewAdaptee())

	require.NotNil(t, target)
	assert.Contains(t, target.Request(), DefaultSentence)
}

func TestAdapter_NilAdaptee(t *testing.T) {
	adapter := NewAdapter(nil)

	assert.Equal(t, TranslationMarker+DefaultSentence, adapter.Request())
}

func TestAdapter_Idempotent(t *testing.T) {
	adapter := NewAdapter(NewAdapteeFromSentence("same every time"))

	first := adapter.Request()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, adapter.Request())
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single rune", "x", "x"},
		{"ascii", "abc", "cba"},
		{"sentence", "Special behavior of the Adaptee.", ".eetpadA eht fo roivaheb laicepS"},
		{"multibyte", "héllo", "olléh"},
		{"cjk", "日本語", "語本日"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reverse(tt.input))
		})
	}
}

func TestReverse_Involutive(t *testing.T) {
	// Reversing twice restores the original — the property the Adapter
	// relies on to undo the Adaptee's storage order.
	inputs := []string{"", "a", "Special behavior of the Adaptee.", "Grüße — 日本語"}
	for _, s := range inputs {
		assert.Equal(t, s, Reverse(Reverse(s)))
	}
}
