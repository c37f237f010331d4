package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wikimedia/favorites/favorites"
	"github.com/wikimedia/favorites/title"
	"github.com/wikimedia/favorites/token"
)

type toggleRequest struct {
	Title      string `json:"title"`
	Unfavorite bool   `json:"unfavorite"`
	Token      string `json:"token"`
}

type toggleResponse struct {
	Success bool   `json:"success"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message"`
}

// handleToggle is the single-page write API: favorite or unfavorite
// one title for the calling user.
func (s *Server) handleToggle(c echo.Context) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, toggleResponse{
			Message: "you must be logged in to have a favorite list",
		})
	}

	var req toggleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toggleResponse{Message: "malformed request"})
	}

	t, err := title.Parse(req.Title)
	if err != nil {
		return c.JSON(http.StatusBadRequest, toggleResponse{
			Message: fmt.Sprintf("invalid title %q", req.Title),
		})
	}

	action := token.ActionFavorite
	dir := favorites.Favorite
	if req.Unfavorite {
		action = token.ActionUnfavorite
		dir = favorites.Unfavorite
	}
	if err := s.tokens.Check(c.Request().Context(), userID, action, t.Key, req.Token); err != nil {
		if errors.Is(err, token.ErrTokenMismatch) {
			return c.JSON(http.StatusForbidden, toggleResponse{Message: "invalid token"})
		}
		return c.JSON(http.StatusServiceUnavailable, toggleResponse{Message: "temporarily unavailable"})
	}

	changed, err := s.engine.Toggle(c.Request().Context(), userID, t, dir)
	if err != nil {
		return s.mutationError(c, err)
	}
	if !changed {
		return c.JSON(http.StatusOK, toggleResponse{
			Title:   t.Prefixed(),
			Message: fmt.Sprintf("could not %s %q", action, t.Prefixed()),
		})
	}

	msg := fmt.Sprintf("%q has been added to your favorites", t.Prefixed())
	if req.Unfavorite {
		msg = fmt.Sprintf("%q has been removed from your favorites", t.Prefixed())
	}
	return c.JSON(http.StatusOK, toggleResponse{
		Success: true,
		Title:   t.Prefixed(),
		Message: msg,
	})
}

type tokenResponse struct {
	Token string `json:"token"`
}

// handleToken issues the edit token a client needs before calling any
// of the mutating endpoints.
func (s *Server) handleToken(c echo.Context) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, toggleResponse{
			Message: "you must be logged in to have a favorite list",
		})
	}

	action := c.QueryParam("action")
	switch action {
	case token.ActionFavorite, token.ActionUnfavorite, token.ActionListEdit:
	default:
		return c.JSON(http.StatusBadRequest, toggleResponse{Message: "unknown token action"})
	}

	key := ""
	if action != token.ActionListEdit {
		t, err := title.Parse(c.QueryParam("title"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, toggleResponse{
				Message: "a valid title is required for page tokens",
			})
		}
		key = t.Key
	}

	tok, err := s.tokens.Issue(c.Request().Context(), userID, action, key)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, toggleResponse{Message: "temporarily unavailable"})
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: tok})
}

func (s *Server) mutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, favorites.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, toggleResponse{
			Message: "you must be logged in to have a favorite list",
		})
	case errors.Is(err, favorites.ErrStoreUnavailable):
		s.log.Error("favorites store unavailable", "error", err)
		return c.JSON(http.StatusServiceUnavailable, toggleResponse{Message: "temporarily unavailable"})
	default:
		s.log.Error("unexpected failure", "error", err)
		return c.JSON(http.StatusInternalServerError, toggleResponse{Message: "internal error"})
	}
}
