//go:build unit

package password_test

import (
	"testing"

	"movie-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	t.Run("hash then compare", func(t *testing.T) {
		digest, err := h.Hash("pw")
		require.NoError(t, err)
		assert.NotEqual(t, "pw", digest)
		assert.NoError(t, h.Compare(digest, "pw"))
	})

	t.Run("mismatch", func(t *testing.T) {
		digest, err := h.Hash("pw")
		require.NoError(t, err)
		assert.ErrorIs(t, h.Compare(digest, "other"), password.ErrMismatch)
	})

	t.Run("empty inputs", func(t *testing.T) {
		_, err := h.Hash("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
		assert.ErrorIs(t, h.Compare("", "pw"), password.ErrInvalidPassword)
		assert.ErrorIs(t, h.Compare("digest", ""), password.ErrInvalidPassword)
	})

	t.Run("default cost is 12", func(t *testing.T) {
		digest, err := password.NewHasher(0).Hash("pw")
		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(digest))
		require.NoError(t, err)
		assert.Equal(t, 12, cost)
	})
}
