package vectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	p1 := New(2, -4)
	p2 := New(10, 8)

	assert.Equal(t, p1, Lerp(p1, p2, 0))
	assert.Equal(t, p2, Lerp(p1, p2, 1))
	assert.Equal(t, New(6, 2), Lerp(p1, p2, 0.5))
	assert.Equal(t, New(18, 20), Lerp(p1, p2, 2))
	assert.Equal(t, New(-6, -16), Lerp(p1, p2, -1))
}

func TestClampedLerp(t *testing.T) {
	p1 := New(2, -4)
	p2 := New(10, 8)

	assert.Equal(t, ClampedLerp(p1, p2, 0), ClampedLerp(p1, p2, -5))
	assert.Equal(t, ClampedLerp(p1, p2, 1), ClampedLerp(p1, p2, 5))
	assert.Equal(t, p1, ClampedLerp(p1, p2, -5))
	assert.Equal(t, p2, ClampedLerp(p1, p2, 5))
	assert.Equal(t, New(4, -1), ClampedLerp(p1, p2, 0.25))
}
