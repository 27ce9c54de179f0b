package memory

import (
	"context"

	"github.com/google/uuid"

	"blogsphere/internal/domain"
)

type blogRepository struct {
	s *Store
}

func (r *blogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	blog.PublishedAt = r.s.now()
	blog.UpdatedAt = blog.PublishedAt
	stored := *blog
	stored.Comments = copyIDs(blog.Comments)
	r.s.blogs[blog.ID] = &stored
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.blogs[id]
	if !ok {
		return nil, nil
	}
	out := *b
	out.Comments = copyIDs(b.Comments)
	return &out, nil
}

func (r *blogRepository) AttachComment(ctx context.Context, blogID, commentID uuid.UUID, topLevel bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.blogs[blogID]
	if !ok || containsID(b.Comments, commentID) {
		return false, nil
	}
	b.Comments = append(b.Comments, commentID)
	b.Activity.TotalComments++
	if topLevel {
		b.Activity.TotalParentComments++
	}
	b.UpdatedAt = r.s.now()
	return true, nil
}

func (r *blogRepository) DetachComment(ctx context.Context, blogID, commentID uuid.UUID, topLevel bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.blogs[blogID]
	if !ok {
		return false, nil
	}
	var removed bool
	b.Comments, removed = removeID(b.Comments, commentID)
	if !removed {
		return false, nil
	}
	b.Activity.TotalComments--
	if topLevel {
		b.Activity.TotalParentComments--
	}
	b.UpdatedAt = r.s.now()
	return true, nil
}

func (r *blogRepository) AdjustLikes(ctx context.Context, blogID uuid.UUID, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if b, ok := r.s.blogs[blogID]; ok {
		b.Activity.TotalLikes += int64(delta)
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.blogs, id)
	return nil
}
