package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clinic-management-api/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const profileCacheTTL = 5 * time.Minute

// ProfileCacheService is a read-through cache for the composite identity view.
// A miss returns (nil, nil). Cache failures degrade to the database path and
// are logged, never surfaced.
type ProfileCacheService interface {
	Get(ctx context.Context, userID uint) (*dto.UserResponse, error)
	Set(ctx context.Context, userID uint, view *dto.UserResponse)
	Invalidate(ctx context.Context, userID uint)
}

type profileCacheService struct {
	log         *logrus.Logger
	redisClient *redis.Client
}

func NewProfileCacheService(log *logrus.Logger, redisClient *redis.Client) ProfileCacheService {
	return &profileCacheService{
		log:         log,
		redisClient: redisClient,
	}
}

func profileCacheKey(userID uint) string {
	return fmt.Sprintf("profile_view:%d", userID)
}

func (s *profileCacheService) Get(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	payload, err := s.redisClient.Get(ctx, profileCacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		s.log.Warnf("Failed to read profile cache: %+v", err)
		return nil, nil
	}

	var view dto.UserResponse
	if err := json.Unmarshal(payload, &view); err != nil {
		s.log.Warnf("Failed to decode cached profile view: %+v", err)
		s.Invalidate(ctx, userID)
		return nil, nil
	}

	return &view, nil
}

func (s *profileCacheService) Set(ctx context.Context, userID uint, view *dto.UserResponse) {
	payload, err := json.Marshal(view)
	if err != nil {
		s.log.Warnf("Failed to encode profile view for cache: %+v", err)
		return
	}

	if err := s.redisClient.Set(ctx, profileCacheKey(userID), payload, profileCacheTTL).Err(); err != nil {
		s.log.Warnf("Failed to write profile cache: %+v", err)
	}
}

func (s *profileCacheService) Invalidate(ctx context.Context, userID uint) {
	if err := s.redisClient.Del(ctx, profileCacheKey(userID)).Err(); err != nil {
		s.log.Warnf("Failed to invalidate profile cache: %+v", err)
	}
}
