package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogsphere/internal/domain"
	"blogsphere/internal/middleware"
	"blogsphere/internal/service/blog"
)

type BlogHandler struct {
	blogService blog.Service
}

func NewBlogHandler(blogService blog.Service) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) Like(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}
	blogID, err := parseUUIDParam(c, "blogId", "blog")
	if err != nil {
		return err
	}

	var input domain.LikeBlogInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	liked, err := h.blogService.ToggleLike(c.Context(), actor.ID, blogID, input.IsLikedByUser)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"liked_by_user": liked})
}

func (h *BlogHandler) IsLiked(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}
	blogID, err := parseUUIDParam(c, "blogId", "blog")
	if err != nil {
		return err
	}

	liked, err := h.blogService.IsLiked(c.Context(), actor.ID, blogID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"result": liked})
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}
	blogID, err := parseUUIDParam(c, "blogId", "blog")
	if err != nil {
		return err
	}

	if err := h.blogService.Delete(c.Context(), actor, blogID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
