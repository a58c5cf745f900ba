package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"leagueportal/internal/model"
	"leagueportal/internal/service"
)

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// PlayersResponse is a page of players.
type PlayersResponse struct {
	Success    bool               `json:"success"`
	Players    []model.Player     `json:"players"`
	Pagination service.Pagination `json:"pagination"`
}

// StatsResponse wraps dashboard totals.
type StatsResponse struct {
	Success bool           `json:"success"`
	Stats   *service.Stats `json:"stats"`
}

// UsersResponse wraps a user listing.
type UsersResponse struct {
	Success bool           `json:"success"`
	Users   []model.User   `json:"users"`
}

// ListPlayers godoc
// @Summary List registered players
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, 0 for all" default(0)
// @Param paymentStatus query string false "pending or completed"
// @Success 200 {object} PlayersResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/players [get]
func (h *AdminHandler) ListPlayers(c echo.Context) error {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		return badRequest("page must be a number")
	}
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		return badRequest("limit must be a number")
	}

	players, pagination, err := h.adminService.ListPlayers(c.Request().Context(), service.PlayerQuery{
		Page:          page,
		Limit:         limit,
		PaymentStatus: model.PaymentStatus(c.QueryParam("paymentStatus")),
	})
	if err != nil {
		return respondError(err)
	}
	if players == nil {
		players = []model.Player{}
	}
	return c.JSON(http.StatusOK, PlayersResponse{Success: true, Players: players, Pagination: pagination})
}

// ListPayments godoc
// @Summary List all payment attempts, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PaymentsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/payments [get]
func (h *AdminHandler) ListPayments(c echo.Context) error {
	payments, err := h.adminService.ListPayments(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	if payments == nil {
		payments = []model.Payment{}
	}
	return c.JSON(http.StatusOK, PaymentsResponse{Success: true, Payments: payments})
}

// Stats godoc
// @Summary Dashboard totals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, StatsResponse{Success: true, Stats: stats})
}

// ListUsers godoc
// @Summary List user accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UsersResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, UsersResponse{Success: true, Users: users})
}

// DeleteUser godoc
// @Summary Delete a user account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actorID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest("invalid user id")
	}

	if err := h.adminService.DeleteUser(c.Request().Context(), actorID, userID); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "User deleted successfully"})
}

func intQuery(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
