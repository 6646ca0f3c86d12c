//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"movie-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark", func(t *testing.T) {
		assert.Same(t, errSentinel, errs.Mark(nil, errSentinel))
	})

	t.Run("marked error matches both", func(t *testing.T) {
		cause := errors.New("pg: connection refused")
		err := errs.Mark(cause, errSentinel)

		assert.True(t, errs.Is(err, errSentinel))
		assert.True(t, errs.Is(err, cause))
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestWrap(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "noop"))
	assert.NoError(t, errs.Wrapf(nil, "noop %d", 1))

	err := errs.Wrapf(errSentinel, "load booking %d", 7)
	assert.ErrorIs(t, err, errSentinel)
	assert.Equal(t, "load booking 7: sentinel", err.Error())
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
