//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"guideway/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("domain validation error")
	cause := errs.New("start must be before end")

	t.Run("mark and cause are both matchable with errors.Is", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errors.Is(marked, sentinel))
		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("message keeps the cause text", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)

		assert.Contains(t, marked.Error(), "start must be before end")
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		marked := errs.Mark(nil, sentinel)

		require.ErrorIs(t, marked, sentinel)
	})

	t.Run("marks stack across layers", func(t *testing.T) {
		outer := errs.New("database operation failed")
		marked := errs.Mark(errs.Mark(cause, sentinel), outer)

		assert.True(t, errors.Is(marked, outer))
		assert.True(t, errors.Is(marked, sentinel))
		assert.True(t, errors.Is(marked, cause))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("wrapped cause remains matchable", func(t *testing.T) {
		cause := errs.New("no rows")
		wrapped := errs.Wrap(cause, "loading booking")

		require.ErrorIs(t, wrapped, cause)
		assert.Contains(t, wrapped.Error(), "loading booking")
	})
}
