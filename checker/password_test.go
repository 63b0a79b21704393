package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inputkit/inputkit/checker"
)

func TestPassword(t *testing.T) {
	t.Run("accepts password with all character classes", func(t *testing.T) {
		assert.True(t, checker.Password("Str0ng!pass", 8))
		assert.True(t, checker.Password("aB3$efgh", 8))
	})

	t.Run("zero minimum falls back to the default", func(t *testing.T) {
		assert.True(t, checker.Password("aB3$efgh", 0))
		assert.False(t, checker.Password("aB3$efg", 0)) // 7 chars
	})

	t.Run("rejects password shorter than minimum", func(t *testing.T) {
		assert.False(t, checker.Password("aB3$efgh", 12))
	})

	t.Run("rejects missing character classes", func(t *testing.T) {
		assert.False(t, checker.Password("alllowercase3!", 8)) // no uppercase
		assert.False(t, checker.Password("ALLUPPERCASE3!", 8)) // no lowercase
		assert.False(t, checker.Password("NoDigitsHere!", 8))  // no digit
		assert.False(t, checker.Password("NoSymbols123", 8))   // no symbol
	})

	t.Run("rejects empty password", func(t *testing.T) {
		assert.False(t, checker.Password("", 8))
	})

	t.Run("symbols outside the fixed set do not count", func(t *testing.T) {
		// § is not in the accepted punctuation set.
		assert.False(t, checker.Password("Password1§", 8))
	})
}
