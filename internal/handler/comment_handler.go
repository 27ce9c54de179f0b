package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogsphere/internal/domain"
	"blogsphere/internal/middleware"
	"blogsphere/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
	validator      *Validator
}

func NewCommentHandler(commentService comment.Service, validator *Validator) *CommentHandler {
	return &CommentHandler{commentService: commentService, validator: validator}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}
	blogID, err := parseUUIDParam(c, "blogId", "blog")
	if err != nil {
		return err
	}

	var input domain.AddCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := h.validator.Validate(&input); err != nil {
		return err
	}
	input.BlogID = blogID

	view, err := h.commentService.Add(c.Context(), actor.ID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *CommentHandler) ListByBlog(c *fiber.Ctx) error {
	blogID, err := parseUUIDParam(c, "blogId", "blog")
	if err != nil {
		return err
	}

	views, err := h.commentService.ListTopLevel(c.Context(), blogID, c.QueryInt("skip", 0))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(views)
}

func (h *CommentHandler) ListReplies(c *fiber.Ctx) error {
	commentID, err := parseUUIDParam(c, "commentId", "comment")
	if err != nil {
		return err
	}

	views, err := h.commentService.ListReplies(c.Context(), commentID, c.QueryInt("skip", 0))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"replies": views})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}
	commentID, err := parseUUIDParam(c, "commentId", "comment")
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Context(), actor.ID, commentID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
