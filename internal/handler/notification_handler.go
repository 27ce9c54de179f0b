package handler

import (
	"github.com/gofiber/fiber/v2"

	"blogsphere/internal/domain"
	"blogsphere/internal/middleware"
	"blogsphere/internal/service/notification"
)

type NotificationHandler struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	var query domain.NotificationQuery
	if err := c.QueryParser(&query); err != nil {
		return middleware.BadRequest("Invalid query parameters")
	}

	views, err := h.notificationService.List(c.Context(), actor.ID, query)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"notifications": views})
}

func (h *NotificationHandler) Count(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	filter := domain.NotificationFilter(c.Query("filter", string(domain.NotificationFilterAll)))
	total, err := h.notificationService.Count(c.Context(), actor.ID, filter)
	if err != nil {
		return err
	}

	return c.JSON(domain.CountResponse{TotalDocs: total})
}

func (h *NotificationHandler) HasNew(c *fiber.Ctx) error {
	actor, err := middleware.GetActor(c)
	if err != nil {
		return err
	}

	available, err := h.notificationService.HasNew(c.Context(), actor.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"new_notification_available": available})
}
