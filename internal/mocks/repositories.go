package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"blogsphere/internal/domain"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type BlogRepository struct {
	mock.Mock
}

func (m *BlogRepository) Create(ctx context.Context, blog *domain.Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blog), args.Error(1)
}

func (m *BlogRepository) AttachComment(ctx context.Context, blogID, commentID uuid.UUID, topLevel bool) (bool, error) {
	args := m.Called(ctx, blogID, commentID, topLevel)
	return args.Bool(0), args.Error(1)
}

func (m *BlogRepository) DetachComment(ctx context.Context, blogID, commentID uuid.UUID, topLevel bool) (bool, error) {
	args := m.Called(ctx, blogID, commentID, topLevel)
	return args.Bool(0), args.Error(1)
}

func (m *BlogRepository) AdjustLikes(ctx context.Context, blogID uuid.UUID, delta int) error {
	args := m.Called(ctx, blogID, delta)
	return args.Error(0)
}

func (m *BlogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) AppendChild(ctx context.Context, parentID, childID uuid.UUID) (bool, error) {
	args := m.Called(ctx, parentID, childID)
	return args.Bool(0), args.Error(1)
}

func (m *CommentRepository) RemoveChild(ctx context.Context, parentID, childID uuid.UUID) error {
	args := m.Called(ctx, parentID, childID)
	return args.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) DeleteByBlog(ctx context.Context, blogID uuid.UUID) error {
	args := m.Called(ctx, blogID)
	return args.Error(0)
}

func (m *CommentRepository) ListTopLevel(ctx context.Context, blogID uuid.UUID, skip, limit int) ([]domain.Comment, error) {
	args := m.Called(ctx, blogID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) ListReplies(ctx context.Context, parentID uuid.UUID, skip, limit int) ([]domain.Comment, error) {
	args := m.Called(ctx, parentID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	args := m.Called(ctx, notif)
	return args.Error(0)
}

func (m *NotificationRepository) CreateLike(ctx context.Context, notif *domain.Notification) (bool, error) {
	args := m.Called(ctx, notif)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationRepository) DeleteLike(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationRepository) LikeExists(ctx context.Context, userID, blogID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationRepository) SetReply(ctx context.Context, id, replyID uuid.UUID) error {
	args := m.Called(ctx, id, replyID)
	return args.Error(0)
}

func (m *NotificationRepository) ClearReply(ctx context.Context, replyID uuid.UUID) error {
	args := m.Called(ctx, replyID)
	return args.Error(0)
}

func (m *NotificationRepository) DeleteByComment(ctx context.Context, commentID uuid.UUID) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *NotificationRepository) DeleteByBlog(ctx context.Context, blogID uuid.UUID) error {
	args := m.Called(ctx, blogID)
	return args.Error(0)
}

func (m *NotificationRepository) ListForUser(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter, skip, limit int) ([]domain.NotificationView, error) {
	args := m.Called(ctx, userID, filter, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NotificationView), args.Error(1)
}

func (m *NotificationRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) HasUnseen(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationRepository) MarkSeen(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}
