package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wikimedia/favorites/title"
)

// Lifecycle hooks are called by the host wiki itself, not by end
// users, so they carry no edit token; deployments keep these routes on
// an internal listener. Redelivery is safe: both reactions are
// idempotent.

type pageMoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type hookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handlePageMove(c echo.Context) error {
	var req pageMoveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, hookResponse{Message: "malformed request"})
	}

	from, err := title.Parse(req.From)
	if err != nil {
		return c.JSON(http.StatusBadRequest, hookResponse{Message: "invalid source title"})
	}
	to, err := title.Parse(req.To)
	if err != nil {
		return c.JSON(http.StatusBadRequest, hookResponse{Message: "invalid destination title"})
	}

	if err := s.reactor.OnPageRenamed(c.Request().Context(), from, to); err != nil {
		return s.mutationError(c, err)
	}
	return c.JSON(http.StatusOK, hookResponse{Success: true})
}

type pageDeleteRequest struct {
	Title string `json:"title"`
}

func (s *Server) handlePageDelete(c echo.Context) error {
	var req pageDeleteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, hookResponse{Message: "malformed request"})
	}

	t, err := title.Parse(req.Title)
	if err != nil {
		return c.JSON(http.StatusBadRequest, hookResponse{Message: "invalid title"})
	}

	if err := s.reactor.OnPageDeleted(c.Request().Context(), t); err != nil {
		return s.mutationError(c, err)
	}
	return c.JSON(http.StatusOK, hookResponse{Success: true})
}
