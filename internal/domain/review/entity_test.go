//go:build unit

package review_test

import (
	"errors"
	"testing"
	"time"

	"guideway/internal/domain/review"
	"guideway/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Fantastic tour of the old town.", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "comment is optional",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
			},
			{
				name:   "whitespace only trims to empty",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
			},
			{
				name: "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) {
					long := make([]byte, review.MaxCommentLength)
					for i := range long {
						long[i] = 'a'
					}
					b.WithComment(string(long))
				},
			},
			{
				name: "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) {
					long := make([]byte, review.MaxCommentLength+1)
					for i := range long {
						long[i] = 'a'
					}
					b.WithComment(string(long))
				},
				errIs: review.ErrCommentTooLong,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), 4, "  Trimmed comment  ", time.Now())
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Trimmed comment", actual.Comment().String())
	})

	t.Run("empty comment reports IsEmpty", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().WithComment("").BuildDomain()
		require.NoError(t, err)
		assert.True(t, actual.Comment().IsEmpty())
	})

	t.Run("nil id generates a fresh one", func(t *testing.T) {
		first, err1 := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), 5, "Great!", time.Now())
		second, err2 := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), 5, "Great!", time.Now())

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()
			if c.errIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, c.errIs), "expected %v, got %v", c.errIs, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
