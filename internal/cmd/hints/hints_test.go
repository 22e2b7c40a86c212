package hints

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap/internal/cmd/output"
)

func TestHintString(t *testing.T) {
	assert.Equal(t, "💡 plain", New("plain").String())
	assert.Equal(t, "💡 do it\n   Run: tripmap list", NewCommand("do it", "tripmap list").String())
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, output.FormatTable, LocalOnly(), nil))
	assert.Contains(t, buf.String(), "Ratings are only stored locally")
	assert.Contains(t, buf.String(), "Run: tripmap --ratings-url")

	buf.Reset()
	require.NoError(t, Write(&buf, output.FormatJSON, NoMatches()))
	assert.Zero(t, buf.Len(), "structured output gets no hints")
}
