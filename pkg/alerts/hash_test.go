package alerts

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHash(t *testing.T) {
	now := time.Unix(1700000000, 0)

	h1 := GenerateHash(DefaultHashPrefix, "user-1", "EURUSD", 1.1, now)
	h2 := GenerateHash(DefaultHashPrefix, "user-1", "EURUSD", 1.1, now)

	assert.Equal(t, h1, h2)
	assert.True(t, strings.HasPrefix(h1, DefaultHashPrefix))
	assert.Len(t, h1, len(DefaultHashPrefix)+64)
}

func TestGenerateHashVariesWithInputs(t *testing.T) {
	now := time.Unix(1700000000, 0)
	base := GenerateHash(DefaultHashPrefix, "user-1", "EURUSD", 1.1, now)

	assert.NotEqual(t, base, GenerateHash(DefaultHashPrefix, "user-2", "EURUSD", 1.1, now))
	assert.NotEqual(t, base, GenerateHash(DefaultHashPrefix, "user-1", "GBPUSD", 1.1, now))
	assert.NotEqual(t, base, GenerateHash(DefaultHashPrefix, "user-1", "EURUSD", 1.2, now))
	assert.NotEqual(t, base, GenerateHash(DefaultHashPrefix, "user-1", "EURUSD", 1.1, now.Add(time.Second)))

	// sub-second changes share the same hash
	assert.Equal(t, base, GenerateHash(DefaultHashPrefix, "user-1", "EURUSD", 1.1, now.Add(300*time.Millisecond)))
}
