package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesUsePalette(t *testing.T) {
	for _, th := range Available() {
		s := NewStyles(th)
		assert.Equal(t, th.Secondary, s.Hint.GetForeground(), th.Name)
		assert.Equal(t, th.Border, s.HelpSeparator.GetForeground(), th.Name)
		assert.Equal(t, th.Primary, s.HelpKey.GetForeground(), th.Name)
	}
}

func TestByName(t *testing.T) {
	th, ok := ByName("dracula")
	require.True(t, ok)
	assert.Equal(t, Dracula, th)

	_, ok = ByName("solarized")
	assert.False(t, ok)
}
