package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

// ClubRole enforces that the caller holds exactly the required position in
// the club referenced by the request. Routes without a clubIdx reference pass
// through: not every route is club-scoped.
func ClubRole(clubs ports.ClubService, required domain.Position, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Param("clubIdx")
			if raw == "" {
				raw = c.QueryParam("clubIdx")
			}
			if raw == "" {
				return next(c)
			}

			clubIdx, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid club index")
			}

			accountIdx, ok := c.Get(CtxAccountIdx).(int64)
			if !ok {
				return domain.ErrUnauthenticated
			}

			memberships, err := clubs.MembershipsOf(c.Request().Context(), accountIdx)
			if err != nil {
				return err
			}

			for _, m := range memberships {
				if m.ClubIdx != clubIdx {
					continue
				}
				if m.Position != required {
					log.Debug().
						Int64("account_idx", accountIdx).
						Int64("club_idx", clubIdx).
						Str("position", string(m.Position)).
						Str("required", string(required)).
						Msg("club role rejected: position mismatch")
					return domain.ErrUnauthorized
				}
				return next(c)
			}

			log.Debug().Int64("account_idx", accountIdx).Int64("club_idx", clubIdx).Msg("club role rejected: not a member")
			return domain.ErrUnauthorized
		}
	}
}
