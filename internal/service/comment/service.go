package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"blogsphere/internal/domain"
	"blogsphere/internal/pkg/logger"
	"blogsphere/internal/repository"
	"blogsphere/internal/service/notification"
)

type Service interface {
	Add(ctx context.Context, actorID uuid.UUID, input domain.AddCommentInput) (*domain.CommentView, error)
	Delete(ctx context.Context, actorID, commentID uuid.UUID) error
	ListTopLevel(ctx context.Context, blogID uuid.UUID, skip int) ([]domain.CommentView, error)
	ListReplies(ctx context.Context, commentID uuid.UUID, skip int) ([]domain.CommentView, error)
	PurgeBlog(ctx context.Context, blogID uuid.UUID) error
	SetNotificationService(notificationService notification.Service)
}

type service struct {
	commentRepo         repository.CommentRepository
	blogRepo            repository.BlogRepository
	notificationService notification.Service
	redis               *redis.Client
	cacheTTL            time.Duration
	log                 logger.Logger
}

func NewService(
	commentRepo repository.CommentRepository,
	blogRepo repository.BlogRepository,
	redis *redis.Client,
	cacheTTL time.Duration,
	log logger.Logger,
) Service {
	return &service{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		redis:       redis,
		cacheTTL:    cacheTTL,
		log:         log,
	}
}

func (s *service) SetNotificationService(notificationService notification.Service) {
	s.notificationService = notificationService
}

func (s *service) Add(ctx context.Context, actorID uuid.UUID, input domain.AddCommentInput) (*domain.CommentView, error) {
	text := strings.TrimSpace(input.Comment)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is empty", domain.ErrValidation)
	}

	blog, err := s.blogRepo.GetByID(ctx, input.BlogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, fmt.Errorf("blog %s: %w", input.BlogID, domain.ErrNotFound)
	}

	comment := &domain.Comment{
		ID:          uuid.New(),
		BlogID:      blog.ID,
		BlogAuthor:  blog.AuthorID,
		Comment:     text,
		CommentedBy: actorID,
	}
	recipient := blog.AuthorID

	var repliedOn *domain.Comment
	if input.ReplyingTo != nil {
		repliedOn, err = s.commentRepo.GetByID(ctx, *input.ReplyingTo)
		if err != nil {
			return nil, err
		}
		if repliedOn == nil {
			return nil, fmt.Errorf("comment %s: %w", *input.ReplyingTo, domain.ErrNotFound)
		}
		if repliedOn.BlogID != blog.ID {
			return nil, fmt.Errorf("%w: comment %s belongs to another blog", domain.ErrValidation, repliedOn.ID)
		}

		// the tree is two levels deep: replies to a reply hang off its parent
		parentID := repliedOn.ID
		if repliedOn.IsReply && repliedOn.Parent != nil {
			parentID = *repliedOn.Parent
		}
		comment.Parent = &parentID
		comment.IsReply = true
		recipient = repliedOn.CommentedBy
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if _, err := s.blogRepo.AttachComment(ctx, blog.ID, comment.ID, comment.IsTopLevel()); err != nil {
		return nil, fmt.Errorf("failed to attach comment to blog: %w", err)
	}

	if comment.IsReply {
		if _, err := s.commentRepo.AppendChild(ctx, *comment.Parent, comment.ID); err != nil {
			return nil, fmt.Errorf("failed to attach reply to parent: %w", err)
		}
	}

	if s.notificationService != nil {
		if comment.IsReply && input.NotificationID != nil {
			if err := s.notificationService.AttachReply(ctx, *input.NotificationID, comment.ID); err != nil {
				return nil, fmt.Errorf("failed to link reply to notification: %w", err)
			}
		}

		_, err := s.notificationService.NotifyComment(ctx, notification.CommentEvent{
			Comment:   comment,
			Blog:      blog,
			Recipient: recipient,
			RepliedOn: repliedOn,
		})
		if err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx, blog.ID)

	view := domain.NewCommentView(comment, true)
	return &view, nil
}

// Delete removes a comment with its replies, walking the subtree in
// post-order: a record goes only after every reply under it. After a partial
// failure the rest of the subtree stays reachable from the root, and every
// step is safe to repeat.
func (s *service) Delete(ctx context.Context, actorID, commentID uuid.UUID) error {
	root, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if root == nil {
		return fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}
	if actorID != root.CommentedBy && actorID != root.BlogAuthor {
		return fmt.Errorf("%w: only the comment author or the blog author can delete it", domain.ErrPermission)
	}

	type frame struct {
		comment  *domain.Comment
		expanded bool
	}
	pending := []frame{{comment: root}}
	for len(pending) > 0 {
		top := pending[len(pending)-1]
		if !top.expanded {
			pending[len(pending)-1].expanded = true
			for _, childID := range top.comment.Children {
				child, err := s.commentRepo.GetByID(ctx, childID)
				if err != nil {
					return err
				}
				if child != nil {
					pending = append(pending, frame{comment: child})
				}
			}
			continue
		}

		pending = pending[:len(pending)-1]
		if err := s.deleteNode(ctx, top.comment); err != nil {
			return err
		}
	}

	s.invalidate(ctx, root.BlogID)
	return nil
}

// deleteNode unlinks c from its parent last. Reply lookups skip ids whose
// record is gone.
func (s *service) deleteNode(ctx context.Context, c *domain.Comment) error {
	if s.notificationService != nil {
		if err := s.notificationService.RetractComment(ctx, c.ID); err != nil {
			return fmt.Errorf("failed to retract notifications of comment %s: %w", c.ID, err)
		}
	}

	if _, err := s.blogRepo.DetachComment(ctx, c.BlogID, c.ID, c.IsTopLevel()); err != nil {
		return fmt.Errorf("failed to detach comment %s from blog: %w", c.ID, err)
	}

	if err := s.commentRepo.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", c.ID, err)
	}

	if c.Parent != nil {
		if err := s.commentRepo.RemoveChild(ctx, *c.Parent, c.ID); err != nil {
			return fmt.Errorf("failed to detach comment %s from parent: %w", c.ID, err)
		}
	}
	return nil
}

func (s *service) ListTopLevel(ctx context.Context, blogID uuid.UUID, skip int) ([]domain.CommentView, error) {
	skip = domain.NormalizeSkip(skip)
	cacheKey := fmt.Sprintf("comments:%s:skip:%d", blogID, skip)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var views []domain.CommentView
			if json.Unmarshal([]byte(cached), &views) == nil {
				return views, nil
			}
		}
	}

	comments, err := s.commentRepo.ListTopLevel(ctx, blogID, skip, domain.CommentPageSize)
	if err != nil {
		return nil, err
	}
	views := toViews(comments, true)

	if s.redis != nil {
		if data, err := json.Marshal(views); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				s.log.Warn(ctx, "failed to cache comment page", "key", cacheKey, "error", err)
			}
		}
	}

	return views, nil
}

func (s *service) ListReplies(ctx context.Context, commentID uuid.UUID, skip int) ([]domain.CommentView, error) {
	parent, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}

	replies, err := s.commentRepo.ListReplies(ctx, commentID, domain.NormalizeSkip(skip), domain.CommentPageSize)
	if err != nil {
		return nil, err
	}
	return toViews(replies, false), nil
}

// PurgeBlog drops every comment of a blog without touching the blog record,
// which is about to be removed.
func (s *service) PurgeBlog(ctx context.Context, blogID uuid.UUID) error {
	if err := s.commentRepo.DeleteByBlog(ctx, blogID); err != nil {
		return err
	}
	s.invalidate(ctx, blogID)
	return nil
}

func (s *service) invalidate(ctx context.Context, blogID uuid.UUID) {
	if s.redis == nil {
		return
	}
	cachePattern := fmt.Sprintf("comments:%s:*", blogID)
	keys, err := s.redis.Keys(ctx, cachePattern).Result()
	if err != nil {
		s.log.Warn(ctx, "failed to list cached comment pages", "pattern", cachePattern, "error", err)
		return
	}
	if len(keys) > 0 {
		if err := s.redis.Del(ctx, keys...).Err(); err != nil {
			s.log.Warn(ctx, "failed to invalidate comment pages", "blog_id", blogID, "error", err)
		}
	}
}

func toViews(comments []domain.Comment, withBlog bool) []domain.CommentView {
	views := make([]domain.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, domain.NewCommentView(&comments[i], withBlog))
	}
	return views
}
