package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"blogsphere/internal/domain"
	"blogsphere/internal/pkg/logger"
	"blogsphere/internal/repository"
	"blogsphere/internal/service/email"
	"blogsphere/internal/service/user"
)

type Service interface {
	NotifyComment(ctx context.Context, event CommentEvent) (*domain.Notification, error)
	AttachReply(ctx context.Context, notificationID, replyID uuid.UUID) error
	RetractComment(ctx context.Context, commentID uuid.UUID) error
	RetractBlog(ctx context.Context, blogID uuid.UUID) error

	RecordLike(ctx context.Context, actorID uuid.UUID, blog *domain.Blog) (bool, error)
	RetractLike(ctx context.Context, actorID, blogID uuid.UUID) (bool, error)
	IsLiked(ctx context.Context, actorID, blogID uuid.UUID) (bool, error)

	List(ctx context.Context, userID uuid.UUID, query domain.NotificationQuery) ([]domain.NotificationView, error)
	Count(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter) (int64, error)
	HasNew(ctx context.Context, userID uuid.UUID) (bool, error)
}

// CommentEvent describes a freshly stored comment. RepliedOn is set when the
// comment answers another comment; the recipient is then that comment's
// author rather than the blog author.
type CommentEvent struct {
	Comment   *domain.Comment
	Blog      *domain.Blog
	Recipient uuid.UUID
	RepliedOn *domain.Comment
}

type service struct {
	notifRepo repository.NotificationRepository
	users     user.Service
	emailSvc  email.Service
	log       logger.Logger
}

// NewService wires the notification fan-out. emailSvc may be nil, in which
// case no emails are sent.
func NewService(
	notifRepo repository.NotificationRepository,
	users user.Service,
	emailSvc email.Service,
	log logger.Logger,
) Service {
	return &service{
		notifRepo: notifRepo,
		users:     users,
		emailSvc:  emailSvc,
		log:       log,
	}
}

func (s *service) NotifyComment(ctx context.Context, event CommentEvent) (*domain.Notification, error) {
	c := event.Comment
	notif := &domain.Notification{
		ID:              uuid.New(),
		Type:            domain.NotifComment,
		BlogID:          c.BlogID,
		NotificationFor: event.Recipient,
		UserID:          c.CommentedBy,
		CommentID:       &c.ID,
	}
	if event.RepliedOn != nil {
		notif.Type = domain.NotifReply
		repliedOn := event.RepliedOn.ID
		notif.RepliedOnComment = &repliedOn
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return nil, fmt.Errorf("failed to create %s notification: %w", notif.Type, err)
	}

	if s.emailSvc != nil && event.Recipient != c.CommentedBy {
		go s.sendCommentEmail(context.Background(), event)
	}

	return notif, nil
}

func (s *service) sendCommentEmail(ctx context.Context, event CommentEvent) {
	recipient, err := s.users.GetByID(ctx, event.Recipient)
	if err != nil {
		s.log.Warn(ctx, "comment email skipped: recipient lookup failed", "user_id", event.Recipient, "error", err)
		return
	}
	if recipient.Email == "" {
		return
	}
	actor, err := s.users.GetByID(ctx, event.Comment.CommentedBy)
	if err != nil {
		s.log.Warn(ctx, "comment email skipped: actor lookup failed", "user_id", event.Comment.CommentedBy, "error", err)
		return
	}

	msg := email.CommentEmail{
		To:            recipient.Email,
		Locale:        recipient.Locale,
		RecipientName: recipient.FullName,
		ActorName:     actor.FullName,
		Comment:       event.Comment.Comment,
		Reply:         event.RepliedOn != nil,
	}
	if event.Blog != nil {
		msg.BlogTitle = event.Blog.Title
		msg.BlogSlug = event.Blog.Slug
	}

	if err := s.emailSvc.SendCommentEmail(ctx, msg); err != nil {
		s.log.Error(ctx, "failed to send comment email", "comment_id", event.Comment.ID, "error", err)
	}
}

func (s *service) AttachReply(ctx context.Context, notificationID, replyID uuid.UUID) error {
	return s.notifRepo.SetReply(ctx, notificationID, replyID)
}

// RetractComment removes the notification that announced the comment and
// clears any reply back-reference pointing at it.
func (s *service) RetractComment(ctx context.Context, commentID uuid.UUID) error {
	if err := s.notifRepo.DeleteByComment(ctx, commentID); err != nil {
		return err
	}
	return s.notifRepo.ClearReply(ctx, commentID)
}

func (s *service) RetractBlog(ctx context.Context, blogID uuid.UUID) error {
	return s.notifRepo.DeleteByBlog(ctx, blogID)
}

func (s *service) RecordLike(ctx context.Context, actorID uuid.UUID, blog *domain.Blog) (bool, error) {
	return s.notifRepo.CreateLike(ctx, &domain.Notification{
		ID:              uuid.New(),
		Type:            domain.NotifLike,
		BlogID:          blog.ID,
		NotificationFor: blog.AuthorID,
		UserID:          actorID,
	})
}

func (s *service) RetractLike(ctx context.Context, actorID, blogID uuid.UUID) (bool, error) {
	return s.notifRepo.DeleteLike(ctx, actorID, blogID)
}

func (s *service) IsLiked(ctx context.Context, actorID, blogID uuid.UUID) (bool, error) {
	return s.notifRepo.LikeExists(ctx, actorID, blogID)
}

// List returns one page of the user's feed and marks the returned entries as
// seen. The entries keep the seen flag they had when read.
func (s *service) List(ctx context.Context, userID uuid.UUID, query domain.NotificationQuery) ([]domain.NotificationView, error) {
	if !query.Filter.IsValid() {
		return nil, fmt.Errorf("%w: unknown filter %q", domain.ErrValidation, query.Filter)
	}

	views, err := s.notifRepo.ListForUser(ctx, userID, query.Filter, query.Skip(), domain.NotificationPageSize)
	if err != nil {
		return nil, err
	}

	var unseen []uuid.UUID
	for _, v := range views {
		if !v.Seen {
			unseen = append(unseen, v.ID)
		}
	}
	if len(unseen) > 0 {
		if err := s.notifRepo.MarkSeen(ctx, unseen); err != nil {
			s.log.Warn(ctx, "failed to mark notifications seen", "count", len(unseen), "error", err)
		}
	}

	return views, nil
}

func (s *service) Count(ctx context.Context, userID uuid.UUID, filter domain.NotificationFilter) (int64, error) {
	if !filter.IsValid() {
		return 0, fmt.Errorf("%w: unknown filter %q", domain.ErrValidation, filter)
	}
	return s.notifRepo.CountForUser(ctx, userID, filter)
}

func (s *service) HasNew(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.notifRepo.HasUnseen(ctx, userID)
}
