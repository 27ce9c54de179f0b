package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogsphere/internal/middleware"
	"blogsphere/internal/service/upload"
)

type UploadHandler struct {
	uploadService upload.Service
}

func NewUploadHandler(uploadService upload.Service) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

func (h *UploadHandler) GetUploadURL(c *fiber.Ctx) error {
	url, err := h.uploadService.UploadURL(c.Context())
	if err != nil {
		if errors.Is(err, upload.ErrStorageUnavailable) {
			return middleware.Unavailable("Image upload is not available")
		}
		return err
	}

	return c.JSON(fiber.Map{"upload_url": url})
}
