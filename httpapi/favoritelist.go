package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wikimedia/favorites/favorites"
	"github.com/wikimedia/favorites/internal/strutil"
	"github.com/wikimedia/favorites/token"
)

type listGroup struct {
	Namespace int         `json:"namespace"`
	Heading   string      `json:"heading"`
	Entries   []listEntry `json:"entries"`
}

type listEntry struct {
	Title    string `json:"title"`
	Redirect bool   `json:"redirect"`
	Missing  bool   `json:"missing"`
}

type listResponse struct {
	Count  int         `json:"count"`
	Groups []listGroup `json:"groups"`
}

// handleList renders a favorite list grouped by namespace, as JSON or,
// with ?format=wikitext, as the inline wiki markup the <favorites/>
// tag embeds. By default it shows the caller's own list; ?user=<id>
// selects another user's, the way the tag can embed someone else's
// list on a user page. Reading is open, so no token is checked.
func (s *Server) handleList(c echo.Context) error {
	userID := currentUserID(c)
	if raw := c.QueryParam("user"); raw != "" {
		target, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || target <= 0 {
			return c.JSON(http.StatusBadRequest, toggleResponse{Message: "invalid user"})
		}
		userID = target
	}
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, toggleResponse{
			Message: "you must be logged in to have a favorite list",
		})
	}

	entries, err := s.store.ListAll(c.Request().Context(), userID, favorites.ListOptions{})
	if err != nil {
		return s.mutationError(c, err)
	}
	groups := favorites.GroupByNamespace(entries)

	if c.QueryParam("format") == "wikitext" {
		return c.String(http.StatusOK, renderWikitext(groups))
	}

	out := listResponse{Count: len(entries), Groups: make([]listGroup, 0, len(groups))}
	for _, g := range groups {
		lg := listGroup{Namespace: g.Namespace, Heading: g.Heading}
		for _, e := range g.Entries {
			lg.Entries = append(lg.Entries, listEntry{
				Title:    entryTitle(g.Namespace, e.Key),
				Redirect: e.Redirect,
				Missing:  !e.Exists,
			})
		}
		out.Groups = append(out.Groups, lg)
	}
	return c.JSON(http.StatusOK, out)
}

type rawEditRequest struct {
	Titles string `json:"titles"`
	Token  string `json:"token"`
}

type editResponse struct {
	Success      bool     `json:"success"`
	AddedCount   int      `json:"addedCount"`
	RemovedCount int      `json:"removedCount"`
	Added        []string `json:"added,omitempty"`
	Removed      []string `json:"removed,omitempty"`
	Message      string   `json:"message,omitempty"`
}

// handleRawEdit is the raw-editor submission: one title per line,
// replacing the whole list. An empty submission clears it.
func (s *Server) handleRawEdit(c echo.Context) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, toggleResponse{
			Message: "you must be logged in to have a favorite list",
		})
	}

	var req rawEditRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toggleResponse{Message: "malformed request"})
	}
	if err := s.tokens.Check(c.Request().Context(), userID, token.ActionListEdit, "", req.Token); err != nil {
		if errors.Is(err, token.ErrTokenMismatch) {
			return c.JSON(http.StatusForbidden, toggleResponse{Message: "invalid token"})
		}
		return c.JSON(http.StatusServiceUnavailable, toggleResponse{Message: "temporarily unavailable"})
	}

	s.log.Debug("raw edit submitted",
		"user_id", userID, "titles", strutil.TruncateUTF8(req.Titles, 200))

	res, err := s.engine.Reconcile(c.Request().Context(), userID, strutil.SplitLines(req.Titles))
	if err != nil {
		return s.mutationError(c, err)
	}
	return c.JSON(http.StatusOK, editResponse{
		Success:      true,
		AddedCount:   len(res.Added),
		RemovedCount: len(res.Removed),
		Added:        res.Added,
		Removed:      res.Removed,
	})
}

type normalEditRequest struct {
	Titles []string `json:"titles"`
	Token  string   `json:"token"`
}

// handleNormalEdit is the checkbox-form submission: the selected
// titles are removed from the list.
func (s *Server) handleNormalEdit(c echo.Context) error {
	userID := currentUserID(c)
	if userID == 0 {
		return c.JSON(http.StatusUnauthorized, toggleResponse{
			Message: "you must be logged in to have a favorite list",
		})
	}

	var req normalEditRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, toggleResponse{Message: "malformed request"})
	}
	if err := s.tokens.Check(c.Request().Context(), userID, token.ActionListEdit, "", req.Token); err != nil {
		if errors.Is(err, token.ErrTokenMismatch) {
			return c.JSON(http.StatusForbidden, toggleResponse{Message: "invalid token"})
		}
		return c.JSON(http.StatusServiceUnavailable, toggleResponse{Message: "temporarily unavailable"})
	}

	removed, err := s.engine.UnfavoriteTitles(c.Request().Context(), userID, req.Titles)
	if err != nil {
		return s.mutationError(c, err)
	}
	return c.JSON(http.StatusOK, editResponse{
		Success:      true,
		RemovedCount: len(removed),
		Removed:      removed,
	})
}
