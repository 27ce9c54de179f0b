package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"blogsphere/internal/domain"
)

type commentRepository struct {
	s *Store
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	comment.CommentedAt = r.s.now()
	comment.UpdatedAt = comment.CommentedAt
	stored := *comment
	stored.Parent = copyPtr(comment.Parent)
	stored.Children = []uuid.UUID{}
	stored.Author = nil
	r.s.comments[comment.ID] = &stored
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, nil
	}
	out := r.s.copyComment(c)
	return &out, nil
}

func (r *commentRepository) AppendChild(ctx context.Context, parentID, childID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	parent, ok := r.s.comments[parentID]
	if !ok || containsID(parent.Children, childID) {
		return false, nil
	}
	parent.Children = append(parent.Children, childID)
	parent.UpdatedAt = r.s.now()
	return true, nil
}

func (r *commentRepository) RemoveChild(ctx context.Context, parentID, childID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if parent, ok := r.s.comments[parentID]; ok {
		parent.Children, _ = removeID(parent.Children, childID)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.comments, id)
	return nil
}

func (r *commentRepository) DeleteByBlog(ctx context.Context, blogID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, c := range r.s.comments {
		if c.BlogID == blogID {
			delete(r.s.comments, id)
		}
	}
	return nil
}

func (r *commentRepository) ListTopLevel(ctx context.Context, blogID uuid.UUID, skip, limit int) ([]domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []domain.Comment
	for _, c := range r.s.comments {
		if c.BlogID == blogID && !c.IsReply {
			matched = append(matched, r.s.copyComment(c))
		}
	}
	return window(newestFirst(matched), skip, limit), nil
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID uuid.UUID, skip, limit int) ([]domain.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	parent, ok := r.s.comments[parentID]
	if !ok {
		return []domain.Comment{}, nil
	}

	var matched []domain.Comment
	for _, id := range parent.Children {
		if c, ok := r.s.comments[id]; ok {
			matched = append(matched, r.s.copyComment(c))
		}
	}
	return window(newestFirst(matched), skip, limit), nil
}

func (s *Store) copyComment(c *domain.Comment) domain.Comment {
	out := *c
	out.Parent = copyPtr(c.Parent)
	out.Children = copyIDs(c.Children)
	out.Author = s.summary(c.CommentedBy)
	return out
}

func newestFirst(comments []domain.Comment) []domain.Comment {
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CommentedAt.After(comments[j].CommentedAt)
	})
	return comments
}
