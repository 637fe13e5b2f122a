package audit

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/platform/auth"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/pagination"
)

// Handler exposes read-only access to the audit trail. There is no write
// endpoint: entries are produced exclusively by the decision pipeline.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	entries := g.Group("/audit-entries", auth.RequireRole("compliance"))
	entries.GET("", h.List)
	entries.GET("/correlation/:id", h.ListByCorrelation)
}

func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	entries, total, err := h.repo.List(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list audit entries")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(entries, total, p.Limit, p.Offset))
}

func (h *Handler) ListByCorrelation(c echo.Context) error {
	correlationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid correlation id")
	}
	p := pagination.FromContext(c)
	entries, total, err := h.repo.ListByCorrelation(c.Request().Context(), correlationID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list audit entries")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(entries, total, p.Limit, p.Offset))
}
