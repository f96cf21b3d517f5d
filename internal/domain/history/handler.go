package history

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
	"github.com/healthtrack/healthtrack/pkg/pagination"
)

var pagingOpts = pagination.Options{DefaultLimit: 50, MaxLimit: 100}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the history endpoints. There is deliberately no
// update route: history entries are immutable once written.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/history", h.List)
	api.POST("/history", h.Create)
	api.DELETE("/history", h.Delete)
}

func recordID(c echo.Context) (int64, *httperr.Error) {
	id, err := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, httperr.BadRequest(httperr.CodeInvalidID, "Valid ID is required")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c, pagingOpts)
	items, err := h.svc.List(c.Request().Context(), ListParams{
		Type:   c.QueryParam("type"),
		Order:  c.QueryParam("order"),
		Limit:  pg.Limit,
		Offset: pg.Offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	it, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *Handler) Delete(c echo.Context) error {
	id, verr := recordID(c)
	if verr != nil {
		return verr
	}
	it, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "History item deleted successfully",
		"deleted_item": it,
	})
}
