package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentory/publishing-api/internal/api/metrics"
	"github.com/contentory/publishing-api/internal/core/domain"
	"github.com/contentory/publishing-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp creates a new account with the plain USER role.
//
// @Summary      Register a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Account details"
// @Success      201   {object}  showUserResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /user/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.SignUp(c.Request().Context(), req.Name, req.Surname, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.SignUpsTotal.Inc()
	return c.JSON(http.StatusCreated, toShowUser(user))
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /user/token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	signed, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: signed, TokenType: "bearer"})
}

func toShowUser(user *domain.User) showUserResponse {
	return showUserResponse{
		UserID:   user.ID,
		Name:     user.Name,
		Surname:  user.Surname,
		Email:    user.Email,
		IsActive: user.IsActive,
	}
}
