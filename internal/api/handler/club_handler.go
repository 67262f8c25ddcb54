package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ecodot/clubhub/internal/api/metrics"
	"github.com/ecodot/clubhub/internal/core/domain"
	"github.com/ecodot/clubhub/internal/core/ports"
)

// ClubHandler handles club creation, name checks and join requests.
type ClubHandler struct {
	clubService ports.ClubService
	activities  ActivityDispatcher
}

func NewClubHandler(clubService ports.ClubService, activities ActivityDispatcher) *ClubHandler {
	return &ClubHandler{clubService: clubService, activities: activities}
}

// Create registers a new club with the caller as its admin.
//
// @Summary      Create a club
// @Tags         club
// @Accept       json
// @Produce      json
// @Param        body  body      createClubRequest  true  "Club details"
// @Success      201   {object}  createClubResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /club [post]
func (h *ClubHandler) Create(c echo.Context) error {
	accountIdx, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createClubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	idx, err := h.clubService.CreateClub(c.Request().Context(), ports.CreateClubInput{
		BelongIdx:        req.BelongIdx,
		BigCategoryIdx:   req.BigCategoryIdx,
		SmallCategoryIdx: req.SmallCategoryIdx,
		Name:             req.Name,
		Summary:          req.Summary,
		IsRecruit:        req.IsRecruit,
		ProfileImage:     req.ProfileImage,
		BannerImage:      req.BannerImage,
	}, accountIdx)
	if err != nil {
		return err
	}

	metrics.ClubsCreatedTotal.Inc()
	h.activities.Enqueue(domain.Activity{
		Kind:       domain.ActivityClubCreated,
		AccountIdx: accountIdx,
		ClubIdx:    idx,
		OccurredAt: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, createClubResponse{ClubIdx: idx})
}

// CheckName reports whether a club name is still available.
//
// @Summary      Check club name availability
// @Tags         club
// @Produce      json
// @Param        clubName  path      string  true  "Proposed club name"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /club/duplicate/name/{clubName} [get]
func (h *ClubHandler) CheckName(c echo.Context) error {
	name := c.Param("clubName")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "club name is required")
	}

	if err := h.clubService.CheckNameAvailable(c.Request().Context(), name); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "name available"})
}

// JoinRequest files a request to join a recruiting club.
//
// @Summary      Request to join a club
// @Tags         club
// @Produce      json
// @Param        clubIdx  path      int  true  "Club index"
// @Success      201   {object}  joinRequestResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /club/{clubIdx}/join-request [post]
func (h *ClubHandler) JoinRequest(c echo.Context) error {
	accountIdx, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	clubIdx, err := strconv.ParseInt(c.Param("clubIdx"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid club index")
	}

	requestIdx, err := h.clubService.JoinRequest(c.Request().Context(), clubIdx, accountIdx)
	if err != nil {
		metrics.JoinRequestsTotal.WithLabelValues(joinRequestResult(err)).Inc()
		return err
	}

	metrics.JoinRequestsTotal.WithLabelValues("ok").Inc()
	h.activities.Enqueue(domain.Activity{
		Kind:       domain.ActivityJoinRequested,
		AccountIdx: accountIdx,
		ClubIdx:    clubIdx,
		OccurredAt: time.Now().UTC(),
	})

	return c.JSON(http.StatusCreated, joinRequestResponse{RequestIdx: requestIdx})
}

// SetRecruit opens or closes recruiting for a club. The route is gated by the
// ADMIN club-role guard.
//
// @Summary      Toggle club recruiting
// @Tags         club
// @Accept       json
// @Produce      json
// @Param        clubIdx  path      int  true  "Club index"
// @Param        body  body      setRecruitRequest  true  "Recruiting flag"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /club/{clubIdx}/recruit [patch]
func (h *ClubHandler) SetRecruit(c echo.Context) error {
	clubIdx, err := strconv.ParseInt(c.Param("clubIdx"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid club index")
	}

	var req setRecruitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.clubService.SetRecruit(c.Request().Context(), clubIdx, req.IsRecruit); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "recruiting flag updated"})
}

func joinRequestResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrClubNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrRecruitingClosed):
		return "recruiting_closed"
	case errors.Is(err, domain.ErrAlreadyMember):
		return "already_member"
	case errors.Is(err, domain.ErrDuplicateJoinRequest):
		return "duplicate"
	default:
		return "error"
	}
}
