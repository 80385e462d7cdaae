package preference

import (
	"context"
	"fmt"

	"AtelierAI/app/services/stylist/plan"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const keyPrefix = "stylist:pref:"

// Store keeps each user's gender preference. The pipeline reads the value
// once at submission time; consistency of the backing store is not the
// pipeline's concern.
type Store interface {
	Get(ctx context.Context, userId int64) (string, error)
	Set(ctx context.Context, userId int64, gender string) error
}

type redisStore struct {
	rds *redis.Redis
}

func NewStore(rds *redis.Redis) Store {
	return &redisStore{rds: rds}
}

// Get returns the stored preference, defaulting to "any" when the user has
// never chosen one.
func (s *redisStore) Get(ctx context.Context, userId int64) (string, error) {
	val, err := s.rds.GetCtx(ctx, key(userId))
	if err != nil {
		return "", err
	}
	if val == "" {
		return plan.GenderAny, nil
	}
	if !plan.ValidGender(val) {
		return "", fmt.Errorf("corrupt preference %q for user %d", val, userId)
	}
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, userId int64, gender string) error {
	if !plan.ValidGender(gender) {
		return fmt.Errorf("invalid gender preference %q", gender)
	}
	return s.rds.SetCtx(ctx, key(userId), gender)
}

func key(userId int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userId)
}
