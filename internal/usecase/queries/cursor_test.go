//go:build unit

package queries

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	at := time.Date(2025, 6, 10, 14, 30, 0, 123456000, time.UTC)

	encoded := EncodeAfterCursor(at, id)
	gotTime, gotID, err := DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.True(t, gotTime.Equal(at), "expected %v, got %v", at, gotTime)
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "???"},
		{"missing uuid", "12345"},
		{"bad uuid", "12345-not-a-uuid"},
		{"unencoded timestamp-uuid pair", "1749565800000000-" + uuid.NewString()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 20, ValidateLimit(-5))
	assert.Equal(t, 50, ValidateLimit(50))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}
