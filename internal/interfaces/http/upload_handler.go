package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/infrastructure/storage"
	"github.com/bhojansetu/bhojan-setu-api/internal/metrics"
)

// UploadHandler stores product images in the blob bucket (supplier only).
type UploadHandler struct {
	store *storage.ImageStore
}

// NewUploadHandler builds the handler.
func NewUploadHandler(store *storage.ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// ProductImage godoc
// @Summary      Upload a product image
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "JPEG, PNG or WebP image"
// @Success      201  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/uploads/product-image [post]
func (h *UploadHandler) ProductImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "multipart field 'image' is required"})
	}
	if fileHeader.Size > h.store.MaxBytes() {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "image exceeds the upload size limit"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fail(c, err)
	}
	defer file.Close()

	url, err := h.store.SaveProductImage(
		c.UserContext(),
		GetUserID(c),
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		return fail(c, err)
	}
	metrics.ImageUploads.Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: url})
}
