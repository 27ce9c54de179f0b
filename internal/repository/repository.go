package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Blog         BlogRepository
	Comment      CommentRepository
	Notification NotificationRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Blog:         NewBlogRepository(db),
		Comment:      NewCommentRepository(db),
		Notification: NewNotificationRepository(db),
	}
}
