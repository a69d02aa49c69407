package terminal

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestPromptURL(t *testing.T) {
	var out bytes.Buffer
	url, err := promptURL(reader("https://example.com/form\n"), &out, "")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/form", url)
}

func TestPromptURLUsesDefault(t *testing.T) {
	var out bytes.Buffer
	url, err := promptURL(reader("\n"), &out, "https://example.com/last")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/last", url)
	assert.Contains(t, out.String(), "https://example.com/last")
}

func TestPromptCountRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	count, err := promptCount(reader("abc\n-2\n0\n5\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Contains(t, out.String(), "Please enter a valid number.")
	assert.Contains(t, out.String(), "Please enter a positive number.")
}

func TestPromptCountExhaustedInput(t *testing.T) {
	var out bytes.Buffer
	_, err := promptCount(reader("abc"), &out)

	assert.Error(t, err)
}

func TestPromptNamesStopsAtBlankLine(t *testing.T) {
	var out bytes.Buffer
	names, err := promptNames(reader("Alice\nBob\n\nCharlie\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestPromptNamesAllowsEmptyPool(t *testing.T) {
	var out bytes.Buffer
	names, err := promptNames(reader("\n"), &out)

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestPromptNamesStopsAtEOF(t *testing.T) {
	var out bytes.Buffer
	names, err := promptNames(reader("Alice\nBob"), &out)

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}
