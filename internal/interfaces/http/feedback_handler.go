package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/feedback"
)

// FeedbackHandler creates and lists product ratings.
type FeedbackHandler struct {
	uc *feedback.UseCase
}

// NewFeedbackHandler builds the handler.
func NewFeedbackHandler(uc *feedback.UseCase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// Create godoc
// @Summary      Rate a product
// @Tags         feedback
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFeedbackRequest  true  "Rating 1..5 and optional message"
// @Success      201   {object}  dto.FeedbackResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/feedbacks [post]
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFeedbackRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByProduct godoc
// @Summary      List feedback for a product
// @Tags         feedback
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  dto.FeedbackListResponse
// @Router       /api/products/{id}/feedbacks [get]
func (h *FeedbackHandler) ListByProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	out, err := h.uc.ListByProduct(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      List feedback across own products
// @Tags         feedback
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FeedbackListResponse
// @Router       /api/feedbacks [get]
func (h *FeedbackHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListBySupplier(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
