package iotmetric

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/healthtrack/internal/platform/httperr"
	"github.com/healthtrack/healthtrack/pkg/pagination"
)

var pagingOpts = pagination.Options{DefaultLimit: 100, MaxLimit: 1000}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/iot", h.List)
	api.POST("/iot", h.Create)
}

type listResponse struct {
	Data []Point `json:"data"`
	// Summary is *Summary for a non-empty window and an empty object
	// otherwise; absent statistics are never reported as zeroes.
	Summary interface{} `json:"summary"`
}

// filterFromQuery builds the list filter. The metric filter is hard:
// unlike the history type filter, an invalid value fails the request.
func filterFromQuery(c echo.Context) (Filter, *httperr.Error) {
	var f Filter

	if raw := c.QueryParam("metric"); raw != "" {
		m, ok := ParseMetric(raw)
		if !ok {
			return f, httperr.BadRequest(httperr.CodeInvalidMetric,
				"Invalid metric type. Valid values are: heart_rate, steps, sleep_hours")
		}
		f.Metric = &m
	}
	if raw := c.QueryParam("from"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, httperr.BadRequest(httperr.CodeInvalidTimestamp, `Invalid "from" timestamp`)
		}
		f.From = &v
	}
	if raw := c.QueryParam("to"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, httperr.BadRequest(httperr.CodeInvalidTimestamp, `Invalid "to" timestamp`)
		}
		f.To = &v
	}

	return f, nil
}

func (h *Handler) List(c echo.Context) error {
	f, verr := filterFromQuery(c)
	if verr != nil {
		return verr
	}
	pg := pagination.FromContext(c, pagingOpts)

	result, err := h.svc.List(c.Request().Context(), f, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	resp := listResponse{Data: result.Data, Summary: struct{}{}}
	if result.Summary != nil {
		resp.Summary = result.Summary
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	s, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s)
}
