package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"clinic-booking-service/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Cache key for the upcoming_appointments view snapshot
	upcomingCacheKey = "view:upcoming_appointments"

	// Short TTL: the view is time-filtered, stale entries age out fast
	upcomingCacheTTL = 30 * time.Second
)

// ViewCacheService caches upcoming_appointments view reads in Redis.
// The view itself stays the source of truth; cache misses and Redis
// failures fall through to the database.
type ViewCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewViewCacheService(redisClient *redis.Client, log *logrus.Logger) *ViewCacheService {
	return &ViewCacheService{
		redisClient: redisClient,
		log:         log,
	}
}

// GetUpcoming returns the cached view snapshot, or nil on a miss.
func (s *ViewCacheService) GetUpcoming(ctx context.Context) ([]entity.UpcomingAppointment, error) {
	data, err := s.redisClient.Get(ctx, upcomingCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var rows []entity.UpcomingAppointment
	if err := json.Unmarshal(data, &rows); err != nil {
		// Corrupt payload: drop it and treat as a miss
		s.log.Warnf("Failed to decode cached view, evicting: %+v", err)
		s.redisClient.Del(ctx, upcomingCacheKey)
		return nil, nil
	}
	return rows, nil
}

// SetUpcoming stores a view snapshot with a short TTL.
func (s *ViewCacheService) SetUpcoming(ctx context.Context, rows []entity.UpcomingAppointment) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return s.redisClient.Set(ctx, upcomingCacheKey, data, upcomingCacheTTL).Err()
}

// Invalidate drops the snapshot after any appointment write.
func (s *ViewCacheService) Invalidate(ctx context.Context) {
	if err := s.redisClient.Del(ctx, upcomingCacheKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate view cache (non-fatal): %+v", err)
	}
}
