package intake

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/internal/platform/middleware"
	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/clinicalerr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/triage-evaluations", h.Evaluate)
}

// Evaluate runs the pipeline for one encounter. Validation failures return
// 422 with the coded bilingual error so the UI can surface it field-level;
// a roster outage returns 503 because no recommendation can be made.
func (h *Handler) Evaluate(c echo.Context) error {
	var req EvaluationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	correlationID := middleware.CorrelationID(c)
	result, err := h.service.Evaluate(c.Request().Context(), correlationID, &req)
	if err != nil {
		var coded *clinicalerr.Error
		if errors.As(err, &coded) {
			if coded.Code == clinicalerr.CodeRosterUnavailable {
				return c.JSON(http.StatusServiceUnavailable, coded)
			}
			return c.JSON(http.StatusUnprocessableEntity, coded)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "evaluation failed")
	}

	return c.JSON(http.StatusOK, result)
}
