package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityAtRoundRobin(t *testing.T) {
	source := NewSource([]string{"Alice", "Bob"})

	// pool[i mod k] regardless of the order indices are asked for.
	want := []string{"Alice", "Bob", "Alice", "Bob", "Alice", "Bob", "Alice", "Bob", "Alice", "Bob"}
	for _, i := range []int{9, 3, 0, 7, 1, 4, 2, 8, 5, 6} {
		got := source.IdentityAt(i)
		assert.Equal(t, want[i], got.FullName, "index %d", i)
		assert.False(t, got.Fabricated)
	}
}

func TestIdentityAtDerivesEmail(t *testing.T) {
	source := NewSource([]string{"Rahul Sharma"})

	got := source.IdentityAt(0)
	assert.Equal(t, "rahul.sharma@example.com", got.Email)
}

func TestIdentityAtEmptyPoolFabricates(t *testing.T) {
	source := NewSource(nil)
	assert.Zero(t, source.PoolSize())

	for i := 0; i < 20; i++ {
		got := source.IdentityAt(i)
		assert.True(t, got.Fabricated)
		assert.NotEmpty(t, got.FullName)
		assert.Contains(t, got.Email, "@example.com")
		assert.GreaterOrEqual(t, got.Age, 18)
		assert.LessOrEqual(t, got.Age, 60)
		assert.Contains(t, []string{"M", "F"}, got.Gender)
	}
}

func TestFabricateUsesSamplePools(t *testing.T) {
	got := Fabricate()

	require.NotEmpty(t, got.FullName)
	assert.Contains(t, got.FullName, " ")
}

func TestDeriveEmail(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Rahul Sharma", "rahul.sharma@example.com"},
		{"  Priya   Nair ", "priya.nair@example.com"},
		{"O'Brien Smith", "obrien.smith@example.com"},
		{"Ana", "ana@example.com"},
		{"!!!", "user@example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, deriveEmail(tt.name), "name %q", tt.name)
	}
}
