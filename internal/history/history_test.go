package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seeded(lines ...string) *Buffer {
	b := New()
	for _, l := range lines {
		b.Record(l)
	}
	return b
}

func TestBuffer_RecordResetsCursor(t *testing.T) {
	b := seeded("help", "version")
	b.Previous()
	b.Previous()
	assert.Equal(t, 0, b.Cursor())

	b.Record("about")

	assert.Equal(t, 3, b.Cursor())
	assert.Equal(t, []string{"help", "version", "about"}, b.Entries())
}

func TestBuffer_RecordKeepsDuplicates(t *testing.T) {
	b := seeded("help", "help", "help")
	assert.Equal(t, 3, b.Len())
}

func TestBuffer_PreviousWalksBackAndStopsAtOldest(t *testing.T) {
	b := seeded("help", "version")

	assert.Equal(t, "version", b.Previous())
	assert.Equal(t, "help", b.Previous())
	assert.Equal(t, "help", b.Previous())
	assert.Equal(t, "help", b.Previous())
	assert.Equal(t, 0, b.Cursor())
}

func TestBuffer_NextPastNewestIsBlank(t *testing.T) {
	b := seeded("help", "version")

	b.Previous()
	b.Previous()
	assert.Equal(t, "version", b.Next())
	assert.Equal(t, "", b.Next())
	assert.Equal(t, 2, b.Cursor())
	assert.Equal(t, "", b.Next())
	assert.Equal(t, 2, b.Cursor())
}

func TestBuffer_NextWithoutNavigationIsNoop(t *testing.T) {
	b := seeded("help")

	assert.Equal(t, "", b.Next())
	assert.Equal(t, 1, b.Cursor())
}

func TestBuffer_Empty(t *testing.T) {
	b := New()

	assert.Equal(t, "", b.Previous())
	assert.Equal(t, "", b.Next())
	assert.Equal(t, 0, b.Cursor())
	assert.Empty(t, b.Entries())
}

func TestBuffer_CursorStaysInRange(t *testing.T) {
	b := seeded("a", "b", "c")
	moves := []func() string{b.Previous, b.Next, b.Previous, b.Previous, b.Previous, b.Previous, b.Next, b.Next, b.Next, b.Next}

	for _, move := range moves {
		move()
		assert.GreaterOrEqual(t, b.Cursor(), 0)
		assert.LessOrEqual(t, b.Cursor(), b.Len())
	}
}

func TestBuffer_EntriesIsACopy(t *testing.T) {
	b := seeded("help")
	entries := b.Entries()
	entries[0] = "changed"

	assert.Equal(t, []string{"help"}, b.Entries())
}
