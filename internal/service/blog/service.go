package blog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"blogsphere/internal/domain"
	"blogsphere/internal/repository"
	"blogsphere/internal/service/comment"
	"blogsphere/internal/service/notification"
)

type Service interface {
	// ToggleLike flips the actor's like given the state the client last saw
	// and returns the new state. Repeating a request is harmless: counters
	// only move when a like is actually recorded or retracted.
	ToggleLike(ctx context.Context, actorID, blogID uuid.UUID, likedByUser bool) (bool, error)
	IsLiked(ctx context.Context, actorID, blogID uuid.UUID) (bool, error)
	Delete(ctx context.Context, actor domain.Actor, blogID uuid.UUID) error
}

type service struct {
	blogRepo            repository.BlogRepository
	commentService      comment.Service
	notificationService notification.Service
}

func NewService(
	blogRepo repository.BlogRepository,
	commentService comment.Service,
	notificationService notification.Service,
) Service {
	return &service{
		blogRepo:            blogRepo,
		commentService:      commentService,
		notificationService: notificationService,
	}
}

func (s *service) ToggleLike(ctx context.Context, actorID, blogID uuid.UUID, likedByUser bool) (bool, error) {
	blog, err := s.getBlog(ctx, blogID)
	if err != nil {
		return false, err
	}

	if !likedByUser {
		created, err := s.notificationService.RecordLike(ctx, actorID, blog)
		if err != nil {
			return false, err
		}
		if created {
			if err := s.blogRepo.AdjustLikes(ctx, blog.ID, 1); err != nil {
				return false, err
			}
		}
		return true, nil
	}

	removed, err := s.notificationService.RetractLike(ctx, actorID, blog.ID)
	if err != nil {
		return false, err
	}
	if removed {
		if err := s.blogRepo.AdjustLikes(ctx, blog.ID, -1); err != nil {
			return false, err
		}
	}
	return false, nil
}

func (s *service) IsLiked(ctx context.Context, actorID, blogID uuid.UUID) (bool, error) {
	return s.notificationService.IsLiked(ctx, actorID, blogID)
}

// Delete removes a blog with its notifications and comments. Admins only.
func (s *service) Delete(ctx context.Context, actor domain.Actor, blogID uuid.UUID) error {
	if !actor.Admin {
		return fmt.Errorf("%w: only admins can delete blogs", domain.ErrPermission)
	}

	blog, err := s.getBlog(ctx, blogID)
	if err != nil {
		return err
	}

	if err := s.notificationService.RetractBlog(ctx, blog.ID); err != nil {
		return fmt.Errorf("failed to delete blog notifications: %w", err)
	}
	if err := s.commentService.PurgeBlog(ctx, blog.ID); err != nil {
		return fmt.Errorf("failed to delete blog comments: %w", err)
	}
	return s.blogRepo.Delete(ctx, blog.ID)
}

func (s *service) getBlog(ctx context.Context, blogID uuid.UUID) (*domain.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, fmt.Errorf("blog %s: %w", blogID, domain.ErrNotFound)
	}
	return blog, nil
}
