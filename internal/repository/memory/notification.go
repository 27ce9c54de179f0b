package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"blogsphere/internal/domain"
)

type notificationRepository struct {
	s *Store
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.insertNotification(notif)
	return nil
}

func (r *notificationRepository) CreateLike(ctx context.Context, notif *domain.Notification) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.findLike(notif.UserID, notif.BlogID) != nil {
		return false, nil
	}
	notif.Type = domain.NotifLike
	r.s.insertNotification(notif)
	return true, nil
}

func (r *notificationRepository) DeleteLike(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := r.s.findLike(userID, blogID)
	if n == nil {
		return false, nil
	}
	delete(r.s.notifications, n.ID)
	return true, nil
}

func (r *notificationRepository) LikeExists(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.findLike(userID, blogID) != nil, nil
}

func (r *notificationRepository) SetReply(ctx context.Context, id, replyID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if n, ok := r.s.notifications[id]; ok {
		n.ReplyID = copyPtr(&replyID)
	}
	return nil
}

func (r *notificationRepository) ClearReply(ctx context.Context, replyID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, n := range r.s.notifications {
		if n.ReplyID != nil && *n.ReplyID == replyID {
			n.ReplyID = nil
		}
	}
	return nil
}

func (r *notificationRepository) DeleteByComment(ctx context.Context, commentID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, n := range r.s.notifications {
		if n.CommentID != nil && *n.CommentID == commentID {
			delete(r.s.notifications, id)
		}
	}
	return nil
}

func (r *notificationRepository) DeleteByBlog(ctx context.Context, blogID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, n := range r.s.notifications {
		if n.BlogID == blogID {
			delete(r.s.notifications, id)
		}
	}
	return nil
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter, skip, limit int) ([]domain.NotificationView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := r.s.feed(userID, filter)
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	page := window(matched, skip, limit)
	views := make([]domain.NotificationView, 0, len(page))
	for _, n := range page {
		views = append(views, r.s.view(n))
	}
	return views, nil
}

func (r *notificationRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.feed(userID, filter))), nil
}

func (r *notificationRepository) HasUnseen(ctx context.Context, userID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, n := range r.s.feed(userID, domain.NotificationFilterAll) {
		if !n.Seen {
			return true, nil
		}
	}
	return false, nil
}

func (r *notificationRepository) MarkSeen(ctx context.Context, ids []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, id := range ids {
		if n, ok := r.s.notifications[id]; ok {
			n.Seen = true
		}
	}
	return nil
}

func (s *Store) insertNotification(notif *domain.Notification) {
	notif.CreatedAt = s.now()
	stored := copyNotification(notif)
	stored.ReplyID = nil
	stored.Seen = false
	s.notifications[notif.ID] = &stored
}

func (s *Store) findLike(userID, blogID uuid.UUID) *domain.Notification {
	for _, n := range s.notifications {
		if n.Type == domain.NotifLike && n.UserID == userID && n.BlogID == blogID {
			return n
		}
	}
	return nil
}

func (s *Store) feed(userID uuid.UUID, filter domain.NotificationFilter) []domain.Notification {
	t, typed := filter.Type()
	var out []domain.Notification
	for _, n := range s.notifications {
		if n.NotificationFor != userID || n.UserID == userID {
			continue
		}
		if typed && n.Type != t {
			continue
		}
		out = append(out, copyNotification(n))
	}
	return out
}

func (s *Store) view(n domain.Notification) domain.NotificationView {
	view := domain.NotificationView{
		ID:               n.ID,
		Type:             n.Type,
		Seen:             n.Seen,
		CreatedAt:        n.CreatedAt,
		Blog:             domain.NotificationBlog{ID: n.BlogID},
		User:             s.summary(n.UserID),
		Comment:          s.commentRef(n.CommentID),
		RepliedOnComment: s.commentRef(n.RepliedOnComment),
		Reply:            s.commentRef(n.ReplyID),
	}
	if b, ok := s.blogs[n.BlogID]; ok {
		view.Blog.Slug = b.Slug
		view.Blog.Title = b.Title
	}
	return view
}

func (s *Store) commentRef(id *uuid.UUID) *domain.CommentRef {
	if id == nil {
		return nil
	}
	c, ok := s.comments[*id]
	if !ok {
		return nil
	}
	return &domain.CommentRef{ID: c.ID, Comment: c.Comment}
}
