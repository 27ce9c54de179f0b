package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"blogsphere/internal/middleware"
	"blogsphere/internal/service"
)

type Handlers struct {
	Comment      *CommentHandler
	Notification *NotificationHandler
	Blog         *BlogHandler
	Upload       *UploadHandler
}

func NewHandlers(services *service.Services) *Handlers {
	v := NewValidator()
	return &Handlers{
		Comment:      NewCommentHandler(services.Comment, v),
		Notification: NewNotificationHandler(services.Notification),
		Blog:         NewBlogHandler(services.Blog),
		Upload:       NewUploadHandler(services.Upload),
	}
}

func parseUUIDParam(c *fiber.Ctx, name, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid " + label + " ID")
	}
	return id, nil
}
