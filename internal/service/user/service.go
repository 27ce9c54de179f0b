package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"blogsphere/internal/domain"
	"blogsphere/internal/repository"
)

const (
	DefaultTTL      = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Service is the user directory. Lookups are served from an in-process
// cache; profile changes become visible once the entry expires.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type service struct {
	userRepo repository.UserRepository
	cache    *cache.Cache
}

func NewService(userRepo repository.UserRepository, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &service{
		userRepo: userRepo,
		cache:    cache.New(ttl, cleanupInterval),
	}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if cached, ok := s.cache.Get(id.String()); ok {
		u := *cached.(*domain.User)
		return &u, nil
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	stored := *u
	s.cache.SetDefault(id.String(), &stored)
	return u, nil
}
