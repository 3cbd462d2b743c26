package writer_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wasya-io/go-remote/app/boundary/writer"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestConsoleWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := writer.NewWriter(&buf)

	assert.NoError(t, w.Write("Light is on\n"))
	assert.NoError(t, w.Write("Light is off\n"))
	assert.Equal(t, "Light is on\nLight is off\n", buf.String())
}

func TestConsoleWriter_WriteError(t *testing.T) {
	w := writer.NewWriter(failingWriter{})

	assert.Error(t, w.Write("Light is on\n"))
}
