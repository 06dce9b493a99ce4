package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetDebug(false)
	Debugf("hidden %s", "message")
	assert.Empty(t, buf.String())

	Info("visible %s", "message")
	assert.Contains(t, buf.String(), "visible message")

	buf.Reset()
	SetDebug(true)
	Debugf("now %s", "shown")
	assert.Contains(t, buf.String(), "now shown")
	SetDebug(false)
}

func TestMessageWithArgs(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Warn("lookup miss", "XX")
	assert.Contains(t, buf.String(), "lookup miss: XX")
}
