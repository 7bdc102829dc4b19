package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (service.ProfileCacheService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	return service.NewProfileCacheService(log, client), mr
}

func sampleView() *dto.UserResponse {
	return &dto.UserResponse{
		UserID:   7,
		Username: "j.silva",
		RoleID:   entity.RoleIDPatient,
		Role:     entity.RolePatient,
	}
}

func TestProfileCacheRoundTrip(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	// Miss before any write.
	view, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, view)

	cache.Set(ctx, 7, sampleView())

	view, err = cache.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, uint(7), view.UserID)
	assert.Equal(t, "j.silva", view.Username)
	assert.Equal(t, entity.RolePatient, view.Role)
}

func TestProfileCacheInvalidate(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()

	cache.Set(ctx, 7, sampleView())
	cache.Invalidate(ctx, 7)

	view, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestProfileCacheExpiry(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	cache.Set(ctx, 7, sampleView())
	mr.FastForward(6 * time.Minute) // past the 5 minute TTL

	view, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestProfileCacheCorruptPayload(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("profile_view:7", "{not json"))

	// Corrupt entries degrade to a miss and are purged.
	view, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, view)
	assert.False(t, mr.Exists("profile_view:7"))
}

func TestProfileCacheDownRedis(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	mr.Close()

	// A dead cache never surfaces an error to the caller.
	cache.Set(ctx, 7, sampleView())
	view, err := cache.Get(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, view)
}
