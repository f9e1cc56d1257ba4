package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
	"github.com/bhojansetu/bhojan-setu-api/internal/changefeed"
	"github.com/bhojansetu/bhojan-setu-api/internal/domain/entity"
)

// keepaliveInterval is how often an SSE comment line is written so proxies do
// not drop an idle stream.
const keepaliveInterval = 25 * time.Second

// StreamHandler serves the change feed over Server-Sent Events. Events carry
// row ids only; clients re-fetch through the regular endpoints.
type StreamHandler struct {
	hub *changefeed.Hub
}

// NewStreamHandler builds the handler.
func NewStreamHandler(hub *changefeed.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// Stream godoc
// @Summary      Subscribe to change notifications (SSE)
// @Tags         stream
// @Security     Bearer
// @Produce      text/event-stream
// @Param        tables  query  string  false  "Comma-separated tables: orders,products,profiles (default all)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stream [get]
func (h *StreamHandler) Stream(c *fiber.Ctx) error {
	tables, err := parseTables(c.Query("tables"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: err.Error()})
	}

	sub := h.hub.Subscribe(tables, principalFilter(GetUserID(c), GetRole(c)))

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer sub.Close()
		ticker := time.NewTicker(keepaliveInterval)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				payload, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Table, payload)
			case <-ticker.C:
				fmt.Fprint(w, ": keepalive\n\n")
			}
			// Flush failure means the client went away.
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}

// parseTables validates the comma-separated tables parameter. Empty means all.
func parseTables(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	tables := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		switch t {
		case changefeed.TableOrders, changefeed.TableProducts, changefeed.TableProfiles:
			tables = append(tables, t)
		case "":
		default:
			return nil, fmt.Errorf("unknown table %q", t)
		}
	}
	return tables, nil
}

// principalFilter scopes order events to their own vendor or supplier. Product
// and profile changes are catalog-public.
func principalFilter(userID, role string) changefeed.Filter {
	return func(ev changefeed.Event) bool {
		if ev.Table != changefeed.TableOrders {
			return true
		}
		switch role {
		case entity.RoleVendor:
			return ev.VendorID == userID
		case entity.RoleSupplier:
			return ev.SupplierID == userID
		}
		return false
	}
}
