package svgraster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	t.Run("with hash prefix", func(t *testing.T) {
		c, err := ParseHexColor("#FF0000")
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, c)
	})

	t.Run("without hash prefix", func(t *testing.T) {
		c, err := ParseHexColor("FF0000")
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 255}, c)
	})

	t.Run("lowercase digits", func(t *testing.T) {
		c, err := ParseHexColor("1a2b3c")
		require.NoError(t, err)
		assert.Equal(t, color.NRGBA{R: 0x1A, G: 0x2B, B: 0x3C, A: 255}, c)
	})

	t.Run("non-hex characters", func(t *testing.T) {
		_, err := ParseHexColor("ZZ0000")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidColor))
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := ParseHexColor("12345")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidColor))
	})

	t.Run("short form rejected", func(t *testing.T) {
		_, err := ParseHexColor("#FFF")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidColor))
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseHexColor("")
		require.Error(t, err)
		assert.True(t, IsKind(err, KindInvalidColor))
	})
}
