package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/orders"
)

// OrderHandler covers placement (vendor), the two history views and the
// supplier-side status transitions and stats.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Place godoc
// @Summary      Place an order
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "Product and quantity"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Place(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Vendor order history
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VendorOrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.HistoryForVendor(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// ListIncoming godoc
// @Summary      Supplier incoming orders
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.IncomingOrderListResponse
// @Router       /api/orders/incoming [get]
func (h *OrderHandler) ListIncoming(c *fiber.Ctx) error {
	out, err := h.uc.HistoryForSupplier(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Accept, reject or complete an order
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Order id"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "New status"
// @Success      200   {object}  dto.OrderResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateOrderStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateStatus(GetUserID(c), id, in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Supplier dashboard aggregates
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderStatsResponse
// @Router       /api/orders/stats [get]
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
