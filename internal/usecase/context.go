package usecase

import (
	"context"

	"clinic-booking-service/internal/delivery/http/middleware"
)

// actorFromContext returns the authenticated user's ID for audit rows,
// or nil when the request is unauthenticated.
func actorFromContext(ctx context.Context) (*int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, false
	}
	return &userID, true
}
