package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ReviewQueries interface {
	ListByGuide(ctx context.Context, guideID uuid.UUID, cursor *Cursor, limit int) ([]ReviewListItem, *Cursor, error)
}

type ReviewReadStore interface {
	ListByGuide(ctx context.Context, guideID uuid.UUID, limit int, afterTime *time.Time, afterID *uuid.UUID) ([]ReviewListItem, error)
}

type reviewQueriesImpl struct {
	readStore ReviewReadStore
}

func NewReviewQueries(readStore ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{readStore: readStore}
}

func (q *reviewQueriesImpl) ListByGuide(ctx context.Context, guideID uuid.UUID, cursor *Cursor, limit int) ([]ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterTime *time.Time
	var afterID *uuid.UUID
	if cursor != nil && cursor.After != "" {
		t, id, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		afterTime, afterID = &t, &id
	}

	rows, err := q.readStore.ListByGuide(ctx, guideID, limit+1, afterTime, afterID)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
