package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	long := strings.Repeat("9", 100000)
	c, out := newTextConsole("first\r\n" + long + "\nlast")

	line, err := c.readLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)
	assert.Equal(t, "> ", out.String())

	line, err = c.readLine("")
	require.NoError(t, err)
	assert.Len(t, line, len(long))

	line, err = c.readLine("")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = c.readLine("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewWithoutSourceIsNotFixed(t *testing.T) {
	draws := func() []int {
		c := New(strings.NewReader(""), &bytes.Buffer{})
		require.NotNil(t, c.src)
		var d []int
		for i := 0; i < 4; i++ {
			d = append(d, c.src.Intn(1<<30))
		}
		return d
	}
	assert.NotEqual(t, draws(), draws())
}
