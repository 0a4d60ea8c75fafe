package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/futsal-booking/api/internal/dto"
	"github.com/octobees/futsal-booking/api/internal/service"
)

// SearchHandler exposes the listing browse endpoints.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// List handles GET /services requests. Only searchable listings are returned.
func (h *SearchHandler) List(c echo.Context) error {
	return h.list(c, false)
}

// ListAdmin handles GET /admin/listings requests and includes listings still
// hidden from search.
func (h *SearchHandler) ListAdmin(c echo.Context) error {
	return h.list(c, true)
}

func (h *SearchHandler) list(c echo.Context, includeHidden bool) error {
	filter := dto.SearchFilter{
		Q:             c.QueryParam("q"),
		Location:      c.QueryParam("location"),
		IncludeHidden: includeHidden,
	}

	if category := c.QueryParam("category"); category != "" {
		if _, err := uuid.Parse(category); err != nil {
			return Error(c, http.StatusBadRequest, "category must be a valid id")
		}
		filter.Category = category
	}

	var err error
	if filter.Page, err = queryInt(c, "page"); err != nil {
		return Error(c, http.StatusBadRequest, "page must be a whole number")
	}
	if filter.PerPage, err = queryInt(c, "per_page"); err != nil {
		return Error(c, http.StatusBadRequest, "per_page must be a whole number")
	}

	listings, err := h.search.ListServices(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "unable to list services")
	}

	return Success(c, http.StatusOK, "", listings)
}

func queryInt(c echo.Context, key string) (int, error) {
	raw := c.QueryParam(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
