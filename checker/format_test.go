package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inputkit/inputkit/checker"
)

func TestEmail(t *testing.T) {
	t.Run("accepts common addresses", func(t *testing.T) {
		for _, email := range []string{
			"user@example.com",
			"first.last@example.com",
			"user+tag@example.co.uk",
			"u@sub.domain.org",
		} {
			assert.True(t, checker.Email(email), "expected %q to be valid", email)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, email := range []string{
			"",
			"plainaddress",
			"@example.com",
			"user@",
			"user@domain",
			"user@.example.com",
			"user@example.com.",
			"user..double@example.com",
			"user name@example.com",
			"Name <user@example.com>",
		} {
			assert.False(t, checker.Email(email), "expected %q to be invalid", email)
		}
	})
}

func TestURL(t *testing.T) {
	t.Run("accepts absolute URLs", func(t *testing.T) {
		assert.True(t, checker.URL("https://example.com"))
		assert.True(t, checker.URL("http://example.com/path?q=1"))
		assert.True(t, checker.URL("https://sub.example.com:8443/a/b"))
	})

	t.Run("rejects relative and schemeless values", func(t *testing.T) {
		assert.False(t, checker.URL(""))
		assert.False(t, checker.URL("example.com"))
		assert.False(t, checker.URL("/just/a/path"))
		assert.False(t, checker.URL("not a url"))
	})
}

func TestUUID(t *testing.T) {
	t.Run("accepts RFC 4122 UUIDs", func(t *testing.T) {
		assert.True(t, checker.UUID("123e4567-e89b-42d3-a456-426614174000"))
		assert.True(t, checker.UUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
		assert.True(t, checker.UUID("F47AC10B-58CC-4372-A567-0E02B2C3D479"))
	})

	t.Run("rejects wrong shape", func(t *testing.T) {
		assert.False(t, checker.UUID(""))
		assert.False(t, checker.UUID("123e4567e89b42d3a456426614174000"))
		assert.False(t, checker.UUID("123e4567-e89b-42d3-a456-42661417400"))
		assert.False(t, checker.UUID("123e4567-e89b-42d3-a456-4266141740000"))
		assert.False(t, checker.UUID("zzze4567-e89b-42d3-a456-426614174000"))
	})

	t.Run("rejects invalid version or variant nibble", func(t *testing.T) {
		assert.False(t, checker.UUID("123e4567-e89b-02d3-a456-426614174000")) // version 0
		assert.False(t, checker.UUID("123e4567-e89b-62d3-a456-426614174000")) // version 6
		assert.False(t, checker.UUID("123e4567-e89b-42d3-c456-426614174000")) // variant c
	})

	t.Run("rejects the nil UUID", func(t *testing.T) {
		assert.False(t, checker.UUID("00000000-0000-0000-0000-000000000000"))
	})
}

func TestJSON(t *testing.T) {
	t.Run("already structured values pass", func(t *testing.T) {
		assert.True(t, checker.JSON(map[string]any{"a": 1}))
		assert.True(t, checker.JSON([]any{1, 2, 3}))
		assert.True(t, checker.JSON([]string{"x"}))
		assert.True(t, checker.JSON(42))
		assert.True(t, checker.JSON(true))
	})

	t.Run("string input must parse", func(t *testing.T) {
		assert.True(t, checker.JSON(`{"a": [1, 2], "b": null}`))
		assert.True(t, checker.JSON(`[1,2,3]`))
		assert.True(t, checker.JSON(`"quoted"`))
		assert.False(t, checker.JSON(`{"a":`))
		assert.False(t, checker.JSON(`{a: 1}`))
		assert.False(t, checker.JSON(""))
		assert.False(t, checker.JSON("   "))
	})
}

func TestBase64(t *testing.T) {
	t.Run("accepts padded standard alphabet", func(t *testing.T) {
		assert.True(t, checker.Base64("aGVsbG8="))         // "hello"
		assert.True(t, checker.Base64("aGVsbG8gd29ybGQ=")) // "hello world"
		assert.True(t, checker.Base64("YQ=="))             // "a"
		assert.True(t, checker.Base64("TWFu"))             // "Man", no padding needed
	})

	t.Run("rejects unpadded input", func(t *testing.T) {
		assert.False(t, checker.Base64("aGVsbG8"))
		assert.False(t, checker.Base64("YQ"))
	})

	t.Run("rejects url-safe alphabet", func(t *testing.T) {
		assert.False(t, checker.Base64("a-b_cw=="))
	})

	t.Run("rejects garbage and empty input", func(t *testing.T) {
		assert.False(t, checker.Base64(""))
		assert.False(t, checker.Base64("not base64!!"))
		assert.False(t, checker.Base64("aGVs bG8="))
	})
}
