package appointment

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
	"github.com/healthtrack/healthtrack/pkg/pagination"
)

var pagingOpts = pagination.Options{DefaultLimit: 10, MaxLimit: 100}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/appointments", h.List)
	api.POST("/appointments", h.Create)
	api.PATCH("/appointments", h.Update)
	api.DELETE("/appointments", h.Delete)
}

// recordID reads the identity from the query string; it must be a positive
// integer.
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
		Status:   c.QueryParam("status"),
		Upcoming: c.QueryParam("upcoming") == "true",
		Limit:    pg.Limit,
		Offset:   pg.Offset,
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
	a, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Update(c echo.Context) error {
	id, verr := recordID(c)
	if verr != nil {
		return verr
	}
	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c echo.Context) error {
	id, verr := recordID(c)
	if verr != nil {
		return verr
	}
	a, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":        "Successfully deleted appointment",
		"deleted_record": a,
	})
}
