package auth

import (
	"strings"
	"testing"

	"gatehouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Minimum cost keeps the suite fast; the algorithm is the same.
func newTestHasher() *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "Abc12345"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, []byte(password), hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSaltedPerCall(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Abc12345")
	require.NoError(t, err)
	second, err := hasher.Hash("Abc12345")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Abc12345", first))
	assert.True(t, hasher.Check("Abc12345", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "Abc12345"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("abc12345", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_RoundTripDistinctPasswords(t *testing.T) {
	hasher := newTestHasher()
	atLimit := "Aa1" + strings.Repeat("x", maxPasswordBytes-3)
	passwords := []string{"", "a", "Abc12345", "Pässphräse123", "with space 1A", "0123456789", atLimit}

	for _, p := range passwords {
		hash, err := hasher.Hash(p)
		require.NoError(t, err)

		for _, q := range passwords {
			assert.Equal(t, p == q, hasher.Check(q, hash), "Check(%q, Hash(%q))", q, p)
		}
	}

	// bcrypt only reads the first 72 bytes, so a longer input sharing that prefix must not match.
	hash, err := hasher.Hash(atLimit)
	require.NoError(t, err)
	assert.True(t, hasher.Check(atLimit, hash))
	assert.False(t, hasher.Check(atLimit+"x", hash))
	assert.False(t, hasher.Check(atLimit+strings.Repeat("y", 28), hash))
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	hasher := newTestHasher()

	malformed := [][]byte{
		nil,
		{},
		[]byte("invalid_hash"),
		[]byte("$2a$04$short"),
		[]byte("Abc12345"),
	}

	for _, hash := range malformed {
		assert.NotPanics(t, func() {
			assert.False(t, hasher.Check("Abc12345", hash))
		})
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 5
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("Abc12345")
	require.NoError(t, err)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost(hash)
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "no auth section", cfg: &config.Config{}, want: bcrypt.DefaultCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}, want: 6},
		{name: "below minimum", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 1}}, want: bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}
