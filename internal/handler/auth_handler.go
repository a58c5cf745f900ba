package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"leagueportal/internal/model"
	"leagueportal/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	cookie      CookieOptions
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// SignupRequest represents an account signup request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserView is the public shape of a user.
type UserView struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Phone string     `json:"phone"`
	Role  model.Role `json:"role"`
}

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
	Token   string   `json:"token"`
}

// MeResponse is returned by the current-user endpoint.
type MeResponse struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
}

func toUserView(u *model.User) UserView {
	return UserView{ID: u.ID.String(), Name: u.Name, Phone: u.Phone, Role: u.Role}
}

// Signup godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, token, err := h.authService.Signup(c.Request().Context(), service.SignupInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return respondError(err)
	}

	setAuthCookie(c, token, h.cookie)
	return c.JSON(http.StatusCreated, AuthResponse{Success: true, User: toUserView(user), Token: token})
}

// Login godoc
// @Summary Log in with phone and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Phone, req.Password)
	if err != nil {
		return respondError(err)
	}

	setAuthCookie(c, token, h.cookie)
	return c.JSON(http.StatusOK, AuthResponse{Success: true, User: toUserView(user), Token: token})
}

// Logout godoc
// @Summary Log out and revoke the session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	_, claims, err := currentUserID(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), claims); err != nil {
		return respondError(err)
	}

	clearAuthCookie(c, h.cookie)
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Logged out successfully"})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _, err := currentUserID(c)
	if err != nil {
		return err
	}
	user, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, MeResponse{Success: true, User: toUserView(user)})
}
