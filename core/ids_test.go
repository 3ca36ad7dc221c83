package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	t.Run("GeneratesPrefixedULID", func(t *testing.T) {
		id := NewID("ws")

		assert.True(t, strings.HasPrefix(id, "ws_"))
		assert.True(t, IsValidULID(id))
	})

	t.Run("LowercasesThePrefix", func(t *testing.T) {
		id := NewID("WS")

		assert.True(t, strings.HasPrefix(id, "ws_"))
	})

	t.Run("GeneratesUniqueIDs", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			id := NewID("ws")
			assert.False(t, seen[id])
			seen[id] = true
		}
	})
}

func TestIsValidULID(t *testing.T) {
	t.Run("RejectsMalformedIDs", func(t *testing.T) {
		invalid := []string{
			"",
			"ws",
			"ws_",
			"_01G0EZ1XTM37C5X11SQTDNCTM1",
			"ws_tooshort",
			"WS_01G0EZ1XTM37C5X11SQTDNCTM1",
			"ws-01G0EZ1XTM37C5X11SQTDNCTM1",
		}
		for _, id := range invalid {
			assert.False(t, IsValidULID(id), id)
		}
	})
}

func TestEntityIDs(t *testing.T) {
	t.Run("NewEntityIDHasCanonicalShape", func(t *testing.T) {
		id := NewEntityID()

		assert.Len(t, id, EntityIDLength)
		assert.True(t, IsValidEntityID(id))
	})

	t.Run("GeneratesUniqueIDs", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			id := NewEntityID()
			assert.False(t, seen[id])
			seen[id] = true
		}
	})

	t.Run("RejectsNonCanonicalShapes", func(t *testing.T) {
		invalid := []string{
			"",
			"abc123",
			"Sales",
			strings.Repeat("a", 23),
			strings.Repeat("a", 25),
			strings.Repeat("A", 24), // uppercase hex is not canonical
			strings.Repeat("g", 24), // not hex
			"ws_01G0EZ1XTM37C5X11SQTDNCTM1",
		}
		for _, id := range invalid {
			assert.False(t, IsValidEntityID(id), id)
		}
	})

	t.Run("AcceptsCanonicalShape", func(t *testing.T) {
		assert.True(t, IsValidEntityID("0123456789abcdef01234567"))
	})
}
