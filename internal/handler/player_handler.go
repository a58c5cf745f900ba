package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"leagueportal/internal/model"
	"leagueportal/internal/service"
)

// PlayerHandler handles player registration endpoints.
type PlayerHandler struct {
	playerService service.PlayerService
}

// NewPlayerHandler creates a new player handler.
func NewPlayerHandler(playerService service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// RegisterPlayerRequest is the registration form.
type RegisterPlayerRequest struct {
	PlayerPhoto          string   `json:"playerPhoto" validate:"required"`
	PlayerName           string   `json:"playerName" validate:"required"`
	ContactNumber        string   `json:"contactNumber" validate:"required"`
	DateOfBirth          string   `json:"dateOfBirth" validate:"required"`
	AadharNumber         string   `json:"aadharNumber" validate:"required"`
	Village              string   `json:"village" validate:"required"`
	PostOffice           string   `json:"postOffice" validate:"required"`
	PoliceStation        string   `json:"policeStation" validate:"required"`
	City                 string   `json:"city" validate:"required"`
	GPSelection          string   `json:"gpSelection" validate:"required"`
	ParentName           string   `json:"parentName" validate:"required"`
	ParentContact        string   `json:"parentContact" validate:"required"`
	EmergencyContactName string   `json:"emergencyContactName" validate:"required"`
	EmergencyPhone       string   `json:"emergencyPhone" validate:"required"`
	BowlingStyle         []string `json:"bowlingStyle"`
	BattingStyle         []string `json:"battingStyle"`
	PrimaryRole          string   `json:"primaryRole" validate:"required"`
}

// PlayerSummary is returned after registration.
type PlayerSummary struct {
	ID            string              `json:"id"`
	PlayerName    string              `json:"playerName"`
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
}

// RegisterPlayerResponse wraps the registered player.
type RegisterPlayerResponse struct {
	Success bool          `json:"success"`
	Player  PlayerSummary `json:"player"`
}

// MyPlayerResponse wraps the caller's player, null when not registered.
type MyPlayerResponse struct {
	Success bool          `json:"success"`
	Player  *model.Player `json:"player"`
}

// Register godoc
// @Summary Register the caller as a player
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterPlayerRequest true "Registration form"
// @Success 201 {object} RegisterPlayerResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /players/register [post]
func (h *PlayerHandler) Register(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req RegisterPlayerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	player, err := h.playerService.Register(c.Request().Context(), userID, service.RegisterPlayerInput{
		PlayerPhoto:          req.PlayerPhoto,
		PlayerName:           req.PlayerName,
		ContactNumber:        req.ContactNumber,
		DateOfBirth:          req.DateOfBirth,
		AadharNumber:         req.AadharNumber,
		Village:              req.Village,
		PostOffice:           req.PostOffice,
		PoliceStation:        req.PoliceStation,
		City:                 req.City,
		GPSelection:          req.GPSelection,
		ParentName:           req.ParentName,
		ParentContact:        req.ParentContact,
		EmergencyContactName: req.EmergencyContactName,
		EmergencyPhone:       req.EmergencyPhone,
		BowlingStyle:         req.BowlingStyle,
		BattingStyle:         req.BattingStyle,
		PrimaryRole:          req.PrimaryRole,
	})
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, RegisterPlayerResponse{
		Success: true,
		Player: PlayerSummary{
			ID:            player.ID.String(),
			PlayerName:    player.PlayerName,
			PaymentStatus: player.PaymentStatus,
		},
	})
}

// Me godoc
// @Summary The caller's player profile
// @Tags players
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MyPlayerResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /players/me [get]
func (h *PlayerHandler) Me(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	player, err := h.playerService.GetForUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MyPlayerResponse{Success: true, Player: player})
}
