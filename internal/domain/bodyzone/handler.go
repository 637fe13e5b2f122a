package bodyzone

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/clinicalerr"
)

// Handler serves the zone registry read-only. The registry is built once at
// startup so every response here is a pure lookup.
type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	zones := g.Group("/body-zones")
	zones.GET("", h.List)
	zones.GET("/:id", h.Get)
	zones.GET("/:id/children", h.Children)
	zones.GET("/:id/path", h.Path)
}

// List returns zones, optionally filtered. ?category= narrows to one
// category; ?terminal=true returns only directly selectable zones.
func (h *Handler) List(c echo.Context) error {
	if cat := c.QueryParam("category"); cat != "" {
		return c.JSON(http.StatusOK, h.registry.ZonesByCategory(Category(cat)))
	}
	if c.QueryParam("terminal") == "true" {
		return c.JSON(http.StatusOK, h.registry.TerminalZones())
	}
	return c.JSON(http.StatusOK, h.registry.Zones())
}

func (h *Handler) Get(c echo.Context) error {
	zone, err := h.registry.Zone(c.Param("id"))
	if err != nil {
		return zoneError(c, err)
	}
	return c.JSON(http.StatusOK, zone)
}

func (h *Handler) Children(c echo.Context) error {
	children, err := h.registry.Children(c.Param("id"))
	if err != nil {
		return zoneError(c, err)
	}
	return c.JSON(http.StatusOK, children)
}

// Path returns the bilingual breadcrumb from the root category down to the
// zone, for display above the body map.
func (h *Handler) Path(c echo.Context) error {
	path, err := h.registry.ZonePath(c.Param("id"))
	if err != nil {
		return zoneError(c, err)
	}
	return c.JSON(http.StatusOK, path)
}

func zoneError(c echo.Context, err error) error {
	var coded *clinicalerr.Error
	if errors.As(err, &coded) {
		return c.JSON(http.StatusNotFound, coded)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "zone lookup failed")
}
