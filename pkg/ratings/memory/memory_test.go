package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := New()

	_, found, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, found)

	value := []byte("v1")
	require.NoError(t, s.Put("k", value))
	value[0] = 'x'

	got, found, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v1", string(got))

	require.NoError(t, s.Close())
	_, _, err = s.Get("k")
	assert.Error(t, err)
	assert.Error(t, s.Put("k", nil))
}
