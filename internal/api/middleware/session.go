package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ecodot/clubhub/internal/api/metrics"
	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

// Context keys populated by the Session guard.
const (
	CtxAccountIdx = "account_idx"
	CtxEmail      = "email"
)

// Session validates the cookie-carried token and injects identity into
// context. Three rejection causes are distinguished internally (missing
// token, failed verification, no session entry) but all collapse to 401.
// The session store is authoritative: a cryptographically valid token is
// rejected when no entry exists for its identity.
func Session(codec ports.TokenCodec, store ports.SessionStore, cookieName string, loginTTL time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				metrics.SessionRejectionsTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrUnauthenticated
			}

			payload, ok := codec.Verify(cookie.Value)
			if !ok {
				metrics.SessionRejectionsTotal.WithLabelValues("invalid_token").Inc()
				log.Debug().Msg("session rejected: token failed verification")
				ClearSessionCookie(c, cookieName)
				return domain.ErrUnauthenticated
			}

			_, found, err := store.Get(c.Request().Context(), payload.Idx)
			if err != nil {
				return err
			}
			if !found {
				metrics.SessionRejectionsTotal.WithLabelValues("no_session").Inc()
				log.Debug().Int64("account_idx", payload.Idx).Msg("session rejected: no store entry")
				return domain.ErrUnauthenticated
			}

			// Slide the idle timeout. A failed renewal only shortens the
			// session window, so it must not fail the request.
			if err := store.Renew(c.Request().Context(), payload.Idx, loginTTL); err != nil {
				log.Warn().Err(err).Int64("account_idx", payload.Idx).Msg("session renew failed")
			}

			c.Set(CtxAccountIdx, payload.Idx)
			c.Set(CtxEmail, payload.Email)

			return next(c)
		}
	}
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(c echo.Context, cookieName string) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
	})
}
