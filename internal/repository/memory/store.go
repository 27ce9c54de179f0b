// Package memory implements the repository interfaces on process memory.
// Every write is applied under a single lock, which mirrors the single-row
// atomicity the postgres repositories rely on.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"blogsphere/internal/domain"
	"blogsphere/internal/repository"
)

type Store struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]*domain.User
	blogs         map[uuid.UUID]*domain.Blog
	comments      map[uuid.UUID]*domain.Comment
	notifications map[uuid.UUID]*domain.Notification
	last          time.Time
}

func New() *Store {
	return &Store{
		users:         make(map[uuid.UUID]*domain.User),
		blogs:         make(map[uuid.UUID]*domain.Blog),
		comments:      make(map[uuid.UUID]*domain.Comment),
		notifications: make(map[uuid.UUID]*domain.Notification),
	}
}

// NewRepositories wires every repository to the same store.
func NewRepositories(s *Store) *repository.Repositories {
	return &repository.Repositories{
		User:         &userRepository{s},
		Blog:         &blogRepository{s},
		Comment:      &commentRepository{s},
		Notification: &notificationRepository{s},
	}
}

// now returns strictly increasing timestamps so newest-first ordering is
// stable even when writes land within the clock resolution. Callers hold mu.
func (s *Store) now() time.Time {
	t := time.Now().UTC()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

// CommentCount returns the number of live comments of a blog.
func (s *Store) CommentCount(blogID uuid.UUID) (total, topLevel int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.comments {
		if c.BlogID != blogID {
			continue
		}
		total++
		if !c.IsReply {
			topLevel++
		}
	}
	return total, topLevel
}

// Notifications returns a snapshot of every stored notification.
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		out = append(out, copyNotification(n))
	}
	return out
}

func (s *Store) summary(id uuid.UUID) *domain.UserSummary {
	if u, ok := s.users[id]; ok {
		return u.Summary()
	}
	return nil
}

func copyIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

func removeID(ids []uuid.UUID, id uuid.UUID) ([]uuid.UUID, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...), true
		}
	}
	return ids, false
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func copyNotification(n *domain.Notification) domain.Notification {
	out := *n
	out.CommentID = copyPtr(n.CommentID)
	out.RepliedOnComment = copyPtr(n.RepliedOnComment)
	out.ReplyID = copyPtr(n.ReplyID)
	return out
}

func copyPtr(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func window[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
