package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adaptkit/internal/color"
)

// plainPalette renders without any styling so output is byte-stable.
func plainPalette() color.Palette {
	return color.NewPalette(false)
}

func TestTranscript_CanonicalSections(t *testing.T) {
	sections := Transcript("")

	require.Len(t, sections, 3)

	assert.Equal(t, "Client: I can work just fine with the Target objects:", sections[0].Narration)
	assert.Equal(t, "Target: The default target's behavior.", sections[0].Body)
	assert.Equal(t, KindDefault, sections[0].Kind)

	assert.Equal(t, "Client: The Adaptee class has a weird interface. See, I don't understand it:", sections[1].Narration)
	assert.Equal(t, "Adaptee: .eetpadA eht fo roivaheb laicepS", sections[1].Body)
	assert.Equal(t, KindRaw, sections[1].Kind)

	assert.Equal(t, "Client: But I can work with it via the Adapter:", sections[2].Narration)
	assert.Equal(t, "Adapter: (TRANSLATED) Special behavior of the Adaptee.", sections[2].Body)
	assert.Equal(t, KindTranslated, sections[2].Kind)
}

func TestTranscript_CustomSentence(t *testing.T) {
	sections := Transcript("The bridge holds.")

	require.Len(t, sections, 3)
	// The Target block never varies.
	assert.Equal(t, "Target: The default target's behavior.", sections[0].Body)
	assert.Equal(t, "Adaptee: .sdloh egdirb ehT", sections[1].Body)
	assert.Equal(t, "Adapter: (TRANSLATED) The bridge holds.", sections[2].Body)
}

func TestRunner_Run(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(&buf, plainPalette())

	require.NoError(t, runner.Run(Transcript("")))

	want := `Client: I can work just fine with the Target objects:
Target: The default target's behavior.

Client: The Adaptee class has a weird interface. See, I don't understand it:
Adaptee: .eetpadA eht fo roivaheb laicepS

Client: But I can work with it via the Adapter:
Adapter: (TRANSLATED) Special behavior of the Adaptee.
`
	assert.Equal(t, want, buf.String())
}

func TestRunner_ThreeBlocksInOrder(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(&buf, plainPalette())

	require.NoError(t, runner.Run(Transcript("")))

	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	require.Len(t, blocks, 3)

	// The adapter block contains the readable sentence, not the
	// scrambled form seen in the adaptee's raw block.
	assert.Contains(t, blocks[1], ".eetpadA eht fo roivaheb laicepS")
	assert.Contains(t, blocks[2], "Special behavior of the Adaptee.")
	assert.NotContains(t, blocks[2], ".eetpadA")
}

func TestRunner_Deterministic(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, NewRunner(&first, plainPalette()).Run(Transcript("")))
	require.NoError(t, NewRunner(&second, plainPalette()).Run(Transcript("")))

	assert.Equal(t, first.String(), second.String())
}

func TestRunner_WriteError(t *testing.T) {
	runner := NewRunner(failingWriter{}, plainPalette())

	err := runner.Run(Transcript(""))

	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
