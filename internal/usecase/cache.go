package usecase

import (
	"context"
	"time"
)

// RecommendationCache is the narrow cache surface the usecases need. The
// Redis implementation degrades to a permanent miss when unavailable, so a
// nil-checked implementation is always safe to call.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
