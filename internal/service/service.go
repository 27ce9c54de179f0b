package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"blogsphere/internal/config"
	"blogsphere/internal/pkg/logger"
	"blogsphere/internal/repository"
	"blogsphere/internal/service/auth"
	"blogsphere/internal/service/blog"
	"blogsphere/internal/service/comment"
	"blogsphere/internal/service/email"
	"blogsphere/internal/service/notification"
	"blogsphere/internal/service/upload"
	"blogsphere/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Comment      comment.Service
	Notification notification.Service
	Blog         blog.Service
	Upload       upload.Service
}

// NewServices wires the service graph. redis and minioClient may be nil:
// comment pages are then served uncached and upload signing is refused.
func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config, log logger.Logger) (*Services, error) {
	var emailService email.Service
	if cfg.ResendAPIKey != "" {
		svc, err := email.NewService(cfg)
		if err != nil {
			return nil, err
		}
		emailService = svc
	}

	userService := user.NewService(repos.User, user.DefaultTTL)
	authService := auth.NewService(userService, cfg)
	notificationService := notification.NewService(repos.Notification, userService, emailService, log)
	commentService := comment.NewService(repos.Comment, repos.Blog, redis, cfg.CommentCacheTTL, log)
	commentService.SetNotificationService(notificationService)
	blogService := blog.NewService(repos.Blog, commentService, notificationService)

	uploadService := upload.NewService(nil, cfg)
	if minioClient != nil {
		uploadService = upload.NewService(minioClient, cfg)
	}

	return &Services{
		Auth:         authService,
		User:         userService,
		Comment:      commentService,
		Notification: notificationService,
		Blog:         blogService,
		Upload:       uploadService,
	}, nil
}
