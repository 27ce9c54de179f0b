package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"blogsphere/internal/domain"
	"blogsphere/internal/service/auth"
	"blogsphere/internal/service/email"
	"blogsphere/internal/service/notification"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) NotifyComment(ctx context.Context, event notification.CommentEvent) (*domain.Notification, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *NotificationService) AttachReply(ctx context.Context, notificationID, replyID uuid.UUID) error {
	args := m.Called(ctx, notificationID, replyID)
	return args.Error(0)
}

func (m *NotificationService) RetractComment(ctx context.Context, commentID uuid.UUID) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

func (m *NotificationService) RetractBlog(ctx context.Context, blogID uuid.UUID) error {
	args := m.Called(ctx, blogID)
	return args.Error(0)
}

func (m *NotificationService) RecordLike(ctx context.Context, actorID uuid.UUID, blog *domain.Blog) (bool, error) {
	args := m.Called(ctx, actorID, blog)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationService) RetractLike(ctx context.Context, actorID, blogID uuid.UUID) (bool, error) {
	args := m.Called(ctx, actorID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationService) IsLiked(ctx context.Context, actorID, blogID uuid.UUID) (bool, error) {
	args := m.Called(ctx, actorID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, query domain.NotificationQuery) ([]domain.NotificationView, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NotificationView), args.Error(1)
}

func (m *NotificationService) Count(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) HasNew(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type CommentService struct {
	mock.Mock
}

func (m *CommentService) Add(ctx context.Context, actorID uuid.UUID, input domain.AddCommentInput) (*domain.CommentView, error) {
	args := m.Called(ctx, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentView), args.Error(1)
}

func (m *CommentService) Delete(ctx context.Context, actorID, commentID uuid.UUID) error {
	args := m.Called(ctx, actorID, commentID)
	return args.Error(0)
}

func (m *CommentService) ListTopLevel(ctx context.Context, blogID uuid.UUID, skip int) ([]domain.CommentView, error) {
	args := m.Called(ctx, blogID, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommentView), args.Error(1)
}

func (m *CommentService) ListReplies(ctx context.Context, commentID uuid.UUID, skip int) ([]domain.CommentView, error) {
	args := m.Called(ctx, commentID, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommentView), args.Error(1)
}

func (m *CommentService) PurgeBlog(ctx context.Context, blogID uuid.UUID) error {
	args := m.Called(ctx, blogID)
	return args.Error(0)
}

func (m *CommentService) SetNotificationService(notificationService notification.Service) {
	m.Called(notificationService)
}

type BlogService struct {
	mock.Mock
}

func (m *BlogService) ToggleLike(ctx context.Context, actorID, blogID uuid.UUID, likedByUser bool) (bool, error) {
	args := m.Called(ctx, actorID, blogID, likedByUser)
	return args.Bool(0), args.Error(1)
}

func (m *BlogService) IsLiked(ctx context.Context, actorID, blogID uuid.UUID) (bool, error) {
	args := m.Called(ctx, actorID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *BlogService) Delete(ctx context.Context, actor domain.Actor, blogID uuid.UUID) error {
	args := m.Called(ctx, actor, blogID)
	return args.Error(0)
}

type UserService struct {
	mock.Mock
}

func (m *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendCommentEmail(ctx context.Context, msg email.CommentEmail) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type AuthService struct {
	mock.Mock
}

func (m *AuthService) ValidateAccessToken(token string) (*auth.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func (m *AuthService) IssueAccessToken(userID uuid.UUID, admin bool) (string, error) {
	args := m.Called(userID, admin)
	return args.String(0), args.Error(1)
}

func (m *AuthService) ResolveActor(ctx context.Context, token string) (domain.Actor, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.Actor), args.Error(1)
}

type UploadService struct {
	mock.Mock
}

func (m *UploadService) UploadURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
