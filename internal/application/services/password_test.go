package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("known digests", func(t *testing.T) {
		assert.Equal(t,
			"8c6976e5b5410415bde908bd4dee15dfb167a9c873fc4bb8a81f6f2ab448a918",
			HashPassword("admin"))
		assert.Equal(t,
			"8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92",
			HashPassword("123456"))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, HashPassword("s3cret"), HashPassword("s3cret"))
	})

	t.Run("lowercase hex of fixed length", func(t *testing.T) {
		digest := HashPassword("anything")
		assert.Len(t, digest, 64)
		for _, r := range digest {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'),
				"unexpected digest rune %q", r)
		}
	})
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("correct horse")

	assert.True(t, VerifyPassword(digest, "correct horse"))
	assert.False(t, VerifyPassword(digest, "wrong horse"))
	assert.False(t, VerifyPassword(digest, ""))
}
