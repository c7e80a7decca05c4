//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"innkeeper/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("room not found")

	t.Run("returns the mark itself when err is nil", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		assert.Equal(t, sentinel, err)
	})

	t.Run("preserves the original message", func(t *testing.T) {
		err := errs.Mark(errs.New("no rows in result set"), sentinel)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no rows in result set")
	})
}

func TestIs(t *testing.T) {
	sentinel := errors.New("duplicate room number")

	t.Run("matches a marked error", func(t *testing.T) {
		err := errs.Mark(errs.New("unique constraint violated"), sentinel)
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("matches through additional wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("unique constraint violated"), sentinel), "create room")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("matches plain unmarked sentinels", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
	})

	t.Run("does not match an unrelated sentinel", func(t *testing.T) {
		other := errors.New("guest not found")
		err := errs.Mark(errs.New("unique constraint violated"), sentinel)
		assert.False(t, errs.Is(err, other))
	})
}
