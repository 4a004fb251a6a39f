package store

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
)

// queryTimeout bounds every store call so a stalled database surfaces
// as an error instead of hanging the request.
const queryTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// Postgres error codes we translate into sentinel errors.
const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgSerializationFailure
}
