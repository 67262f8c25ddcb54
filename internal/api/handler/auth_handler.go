package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecodot/clubhub/internal/api/metrics"
	apimiddleware "github.com/ecodot/clubhub/internal/api/middleware"
	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

// AuthHandler handles login and logout. The session token travels in an
// HTTP-only cookie; its lifetime equals the store-side login TTL.
type AuthHandler struct {
	authService ports.AuthService
	activities  ActivityDispatcher
	cookieName  string
	loginTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, activities ActivityDispatcher, cookieName string, loginTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		activities:  activities,
		cookieName:  cookieName,
		loginTTL:    loginTTL,
	}
}

// Login authenticates a member and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()

	claim, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return err
	}

	token, err := h.authService.CreateToken(claim)
	if err != nil {
		return err
	}

	if err := h.authService.SetSession(ctx, claim.Idx, token); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.loginTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	h.activities.Enqueue(domain.Activity{
		Kind:       domain.ActivityAccountLoggedIn,
		AccountIdx: claim.Idx,
		OccurredAt: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, messageResponse{Message: "login successful"})
}

// Logout destroys the caller's session and expires the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	accountIdx, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.authService.DestroySession(c.Request().Context(), accountIdx); err != nil {
		return err
	}

	apimiddleware.ClearSessionCookie(c, h.cookieName)

	h.activities.Enqueue(domain.Activity{
		Kind:       domain.ActivityAccountLoggedOut,
		AccountIdx: accountIdx,
		OccurredAt: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, messageResponse{Message: "logout successful"})
}
