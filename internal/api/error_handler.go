package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ecodot/clubhub/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "login required"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, "insufficient club position"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "account not found"
	case errors.Is(err, domain.ErrClubNotFound):
		return http.StatusNotFound, "club not found"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "email already in use"
	case errors.Is(err, domain.ErrDuplicateClubName):
		return http.StatusConflict, "club name already in use"
	case errors.Is(err, domain.ErrDuplicateJoinRequest):
		return http.StatusConflict, "join request already pending"
	case errors.Is(err, domain.ErrAlreadyMember):
		return http.StatusConflict, "already a member of this club"
	case errors.Is(err, domain.ErrInvalidAffiliation):
		return http.StatusUnprocessableEntity, "unknown major affiliation"
	case errors.Is(err, domain.ErrInvalidReference):
		return http.StatusUnprocessableEntity, "referenced category does not exist"
	case errors.Is(err, domain.ErrRecruitingClosed):
		return http.StatusUnprocessableEntity, "club is not recruiting"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
