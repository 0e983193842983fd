package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type color string

func TestNormalizer(t *testing.T) {
	n := NewNormalizer(map[string]color{"Red": "red", "blue": "blue"}, "red")

	assert.Equal(t, color("blue"), n.Normalize("  BLUE "))
	assert.Equal(t, color("red"), n.Normalize("green"))
	assert.Equal(t, []string{"blue", "red"}, n.ValidKeys())

	v, err := n.NormalizeWithError("Red")
	require.NoError(t, err)
	assert.Equal(t, color("red"), v)

	_, err = n.NormalizeWithError("green")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"green"`)
	assert.Contains(t, err.Error(), "blue, red")
}
