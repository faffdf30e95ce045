package v1

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"countdown/internal/locale"
	"countdown/internal/token"
	"countdown/store"
)

type ParseRequest struct {
	// Text is the timer phrase to parse.
	Text string `json:"text"`
	// Locale is an optional BCP 47 tag; the profile default applies when
	// empty.
	Locale string `json:"locale"`
	// Reference is an optional RFC 3339 instant the phrase is resolved
	// against. Defaults to the current time.
	Reference string `json:"reference"`
}

type ParseResponse struct {
	Input   string `json:"input"`
	Locale  string `json:"locale"`
	Kind    string `json:"kind"`
	Display string `json:"display"`
	EndTime string `json:"endTime"`
}

type ParseHistoryItem struct {
	ID        int32  `json:"id"`
	UID       string `json:"uid"`
	CreatedTs int64  `json:"createdTs"`
	Input     string `json:"input"`
	Locale    string `json:"locale"`
	Kind      string `json:"kind"`
	Display   string `json:"display"`
	EndTs     int64  `json:"endTs"`
}

func (s *APIV1Service) localeFor(tag string) *locale.Locale {
	if tag == "" {
		tag = s.Profile.Locale
	}
	return locale.Lookup(tag)
}

// ParseTimerPhrase parses a phrase, resolves it against the reference
// instant and records the result.
func (s *APIV1Service) ParseTimerPhrase(c echo.Context) error {
	var req ParseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	reference := time.Now()
	if req.Reference != "" {
		parsed, err := time.Parse(time.RFC3339, req.Reference)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "reference must be RFC 3339")
		}
		reference = parsed
	}

	loc := s.localeFor(req.Locale)
	tok, err := token.Parse(req.Text, loc)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	end, err := tok.EndTime(reference)
	if err != nil {
		if errors.Is(err, token.ErrUnresolvable) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	kind := store.TokenKindDateTime
	if _, ok := tok.(*token.DurationToken); ok {
		kind = store.TokenKindDuration
	}
	display := tok.Display(loc)

	if s.Store != nil {
		if _, err := s.Store.CreateParseHistory(c.Request().Context(), &store.ParseHistory{
			UID:     uuid.NewString(),
			Input:   req.Text,
			Locale:  loc.Tag,
			Kind:    kind,
			Display: display,
			EndTs:   end.Unix(),
		}); err != nil {
			// History is best effort; the parse result still stands.
			slog.Warn("failed to record parse history", slog.String("error", err.Error()))
		}
	}

	return c.JSON(http.StatusOK, &ParseResponse{
		Input:   req.Text,
		Locale:  loc.Tag,
		Kind:    string(kind),
		Display: display,
		EndTime: end.Format(time.RFC3339),
	})
}

// ListParseHistory returns recorded phrases, most recent first.
func (s *APIV1Service) ListParseHistory(c echo.Context) error {
	find := &store.FindParseHistory{}

	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		find.Limit = &limit
	}
	if v := c.QueryParam("kind"); v != "" {
		kind := store.TokenKind(v)
		if kind != store.TokenKindDuration && kind != store.TokenKindDateTime {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown kind")
		}
		find.Kind = &kind
	}

	list, err := s.Store.ListParseHistories(c.Request().Context(), find)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]*ParseHistoryItem, 0, len(list))
	for _, h := range list {
		items = append(items, &ParseHistoryItem{
			ID:        h.ID,
			UID:       h.UID,
			CreatedTs: h.CreatedTs,
			Input:     h.Input,
			Locale:    h.Locale,
			Kind:      string(h.Kind),
			Display:   h.Display,
			EndTs:     h.EndTs,
		})
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteParseHistory removes one recorded phrase by id.
func (s *APIV1Service) DeleteParseHistory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	id32 := int32(id)
	if err := s.Store.DeleteParseHistory(c.Request().Context(), &store.DeleteParseHistory{ID: &id32}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
