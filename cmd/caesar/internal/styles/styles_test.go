package styles

import (
	"bytes"
	"testing"

	"github.com/germanamz/caesar/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNeverRendersPlainText(t *testing.T) {
	th := New(&bytes.Buffer{}, config.ColorNever)

	assert.True(t, th.Plain())
	assert.Equal(t, "Khoor", th.Result.Render("Khoor"))
	assert.Equal(t, "Shift 3", th.Shift.Render("Shift 3"))
}

func TestAlwaysForcesColor(t *testing.T) {
	th := New(&bytes.Buffer{}, config.ColorAlways)

	assert.False(t, th.Plain())
	out := th.Error.Render("bad")
	assert.Contains(t, out, "bad")
	assert.Contains(t, out, "\x1b[")
}

func TestAutoOnBufferIsPlain(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	th := New(&bytes.Buffer{}, config.ColorAuto)
	assert.True(t, th.Plain())
}
