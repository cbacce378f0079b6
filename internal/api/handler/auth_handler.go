package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edublog/blog-system/internal/core/ports"
)

const msgUserRegistered = "user registered successfully"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	// Password and role are checked by the auth service after the
	// duplicate-username lookup.
	Password string `json:"password" form:"password"`
	Role     string `json:"role"     form:"role"`
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {string}  string  "user registered successfully"
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Role); err != nil {
		return err
	}

	return c.String(http.StatusCreated, msgUserRegistered)
}

// Login authenticates a user and returns a JWT token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      429   {object}  ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	rememberLogin(c, req.Username)
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
