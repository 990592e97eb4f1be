package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/upturn/portfolio-api/internal/api/middleware"
	"github.com/upturn/portfolio-api/internal/core/ports"
)

// AuthHandler issues and revokes access tokens.
type AuthHandler struct {
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthHandler(tokens ports.TokenService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, logger: logger}
}

type issueTokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

// IssueToken signs the posted claims into a one-hour token, sets it as the
// token cookie and returns it in the body for clients storing it themselves.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Claims to embed (email at minimum)"
// @Success      200   {object}  issueTokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  issueTokenResponse
// @Router       /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var claims map[string]any
	if err := c.Bind(&claims); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	token, expiresAt, err := h.tokens.Issue(claims)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to issue token")
		return c.JSON(http.StatusInternalServerError, issueTokenResponse{
			Success: false,
			Message: "Error generating token",
		})
	}

	c.SetCookie(middleware.NewTokenCookie(token, expiresAt))
	return c.JSON(http.StatusOK, issueTokenResponse{Success: true, Token: token})
}

// Logout revokes the presented token (best effort) and clears the cookie
// transport. Always succeeds: a client without a usable token still ends up
// logged out.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if raw, _ := middleware.ExtractToken(c); raw != "" {
		if err := h.tokens.Revoke(c.Request().Context(), raw); err != nil {
			h.logger.Warn().Err(err).Msg("token revocation failed, cookie cleared anyway")
		}
	}

	c.SetCookie(middleware.ClearTokenCookie())
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
