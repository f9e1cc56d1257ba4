package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/catalog"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
)

// CatalogHandler is the vendor-facing read of available products.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Browse the catalog of available products
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Category substring filter"
// @Param        price     query  string  false  "Price bucket: low, medium or high"
// @Param        q         query  string  false  "Search over product and supplier name"
// @Success      200  {object}  dto.CatalogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var filter dto.CatalogFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query parameters"})
	}
	if err := validate.Struct(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
