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

// AccountHandler handles signup and profile operations.
type AccountHandler struct {
	accountService ports.AccountService
	authService    ports.AuthService
	activities     ActivityDispatcher
	cookieName     string
}

func NewAccountHandler(accountService ports.AccountService, authService ports.AuthService, activities ActivityDispatcher, cookieName string) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		authService:    authService,
		activities:     activities,
		cookieName:     cookieName,
	}
}

// Register creates a new account.
//
// @Summary      Sign up
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      createAccountRequest  true  "Account registration details"
// @Success      201   {object}  createAccountResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /account [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	idx, err := h.accountService.CreateAccount(c.Request().Context(), ports.CreateAccountInput{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		AdmissionYear: req.AdmissionYear,
		MajorIdxs:     req.MajorIdxs,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	h.activities.Enqueue(domain.Activity{
		Kind:       domain.ActivityAccountCreated,
		AccountIdx: idx,
		OccurredAt: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, createAccountResponse{AccountIdx: idx})
}

// Profile returns the caller's profile.
//
// @Summary      Get my profile
// @Tags         account
// @Produce      json
// @Success      200   {object}  profileResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /account/profile [get]
func (h *AccountHandler) Profile(c echo.Context) error {
	accountIdx, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.accountService.GetProfile(c.Request().Context(), accountIdx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Name:          profile.Name,
		PersonalColor: profile.PersonalColor,
		AdmissionYear: profile.AdmissionYear,
		CreatedAt:     profile.CreatedAt,
		Majors:        profile.Majors,
	})
}

// Update applies a partial profile update.
//
// @Summary      Update my profile
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /account [patch]
func (h *AccountHandler) Update(c echo.Context) error {
	accountIdx, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err = h.accountService.UpdateProfile(c.Request().Context(), accountIdx, ports.ProfilePatch{
		Name:          req.Name,
		AdmissionYear: req.AdmissionYear,
		MajorIdxs:     req.MajorIdxs,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "profile updated"})
}

// Delete closes the caller's account and destroys the session, mirroring the
// logout path so the stale cookie cannot outlive the account.
//
// @Summary      Close my account
// @Tags         account
// @Produce      json
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /account [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	accountIdx, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.accountService.DeleteAccount(ctx, accountIdx); err != nil {
		return err
	}
	if err := h.authService.DestroySession(ctx, accountIdx); err != nil {
		return err
	}

	apimiddleware.ClearSessionCookie(c, h.cookieName)

	h.activities.Enqueue(domain.Activity{
		Kind:       domain.ActivityAccountDeleted,
		AccountIdx: accountIdx,
		OccurredAt: time.Now().UTC(),
	})

	return c.JSON(http.StatusOK, messageResponse{Message: "account closed"})
}
