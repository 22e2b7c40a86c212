package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStars(t *testing.T) {
	assert.Equal(t, "-", Stars(0))
	assert.Equal(t, "★☆☆☆☆", Stars(1))
	assert.Equal(t, "★★★★☆", Stars(4))
	assert.Equal(t, "★★★★★", Stars(5))
	assert.Equal(t, "-", Stars(9))
}
