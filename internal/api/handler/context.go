package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ecodot/clubhub/internal/api/middleware"
	"github.com/ecodot/clubhub/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session guard and
// fast-fails when the guard did not run: a handler reached without it is a
// routing mistake, not a user error.
func ctxIdentity(c echo.Context) (accountIdx int64, email string, err error) {
	accountIdx, ok := c.Get(middleware.CtxAccountIdx).(int64)
	if !ok {
		return 0, "", domain.ErrUnauthenticated
	}

	email, _ = c.Get(middleware.CtxEmail).(string)
	return accountIdx, email, nil
}
