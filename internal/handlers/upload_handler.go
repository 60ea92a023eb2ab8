package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/devport/portfolio-api/internal/errs"
	"github.com/devport/portfolio-api/internal/services"
)

type UploadHandler struct {
	svc          *services.UploadService
	maxBatchSize int
}

func NewUploadHandler(svc *services.UploadService, maxBatchSize int) *UploadHandler {
	return &UploadHandler{svc: svc, maxBatchSize: maxBatchSize}
}

// UploadOne relays a single image from the "image" form field.
func (h *UploadHandler) UploadOne(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return errs.New(errs.CodeValidation, "please upload an image file")
	}

	result, err := h.svc.UploadOne(c.Context(), fh)
	if err != nil {
		return err
	}

	message := "Image uploaded successfully"
	if result.Fallback {
		message = "Image processed (inline fallback, media host not configured)"
	}
	return OK(c, fiber.StatusOK, message, result)
}

// UploadMany relays up to maxBatchSize images from the "images" form field.
func (h *UploadHandler) UploadMany(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errs.New(errs.CodeValidation, "please upload at least one image file")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return errs.New(errs.CodeValidation, "please upload at least one image file")
	}
	if len(files) > h.maxBatchSize {
		return errs.New(errs.CodeValidation,
			fmt.Sprintf("too many files, maximum is %d per request", h.maxBatchSize))
	}

	results, err := h.svc.UploadMany(c.Context(), files)
	if err != nil {
		return err
	}
	return OK(c, fiber.StatusOK, "Images uploaded successfully", results)
}
