package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogsphere/internal/middleware"
	"blogsphere/internal/service/auth"
)

func SetupRoutes(app *fiber.App, h *Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	v1.Get("/blogs/:blogId/comments", h.Comment.ListByBlog)
	v1.Get("/comments/:commentId/replies", h.Comment.ListReplies)

	protected := v1.Group("", middleware.AuthRequired(authService))

	blogs := protected.Group("/blogs/:blogId")
	blogs.Post("/comments", h.Comment.Create)
	blogs.Post("/like", h.Blog.Like)
	blogs.Get("/like", h.Blog.IsLiked)
	blogs.Delete("/", middleware.RequireAdmin(), h.Blog.Delete)

	protected.Delete("/comments/:commentId", h.Comment.Delete)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/count", h.Notification.Count)
	notifications.Get("/new", h.Notification.HasNew)

	protected.Get("/upload-url", h.Upload.GetUploadURL)
}
