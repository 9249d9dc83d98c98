package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hackathon/backend/services/auth-service/internal/models"
)

// RedisUserStore keeps users as JSON documents under users:<email>.
type RedisUserStore struct {
	client redis.Cmdable
	now    func() time.Time
}

// NewRedisUserStore returns redis-backed store.
func NewRedisUserStore(client redis.Cmdable) *RedisUserStore {
	return &RedisUserStore{client: client, now: time.Now}
}

func (s *RedisUserStore) key(email string) string {
	return fmt.Sprintf("users:%s", normalizeEmail(email))
}

// Create stores user unless the email already exists.
func (s *RedisUserStore) Create(ctx context.Context, user *models.User) error {
	user.Email = normalizeEmail(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = s.now().UTC()
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	created, err := s.client.SetNX(ctx, s.key(user.Email), string(data), 0).Result()
	if err != nil {
		return fmt.Errorf("repository: redis setnx: %w", err)
	}
	if !created {
		return ErrEmailTaken
	}
	return nil
}

// GetByEmail fetches a user by email.
func (s *RedisUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	raw, err := s.client.Get(ctx, s.key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: redis get: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("repository: decode user: %w", err)
	}
	return &user, nil
}
