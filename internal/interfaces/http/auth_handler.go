package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/scrapmaster-api/internal/application/auth"
	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
)

// AuthHandler maneja el flujo de autenticación contra el proveedor hospedado.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      URL de login del proveedor hospedado
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginURLResponse
// @Router       /api/auth/login [get]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return c.JSON(dto.LoginURLResponse{AuthURL: h.uc.LoginURL()})
}

// Profile godoc
// @Summary      Intercambiar session ID por sesión propia
// @Tags         auth
// @Produce      json
// @Param        X-Session-ID  header  string  true  "session ID de un solo uso entregado por el redirect"
// @Success      200  {object}  dto.ExchangeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	sessionID := c.Get("X-Session-ID")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "header X-Session-ID requerido"})
	}
	out, err := h.uc.Exchange(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION_ID", Message: "session ID inválido o expirado"})
		}
		if errors.Is(err, domain.ErrExternalService) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AUTH_PROVIDER", Message: "error del servicio de autenticación"})
		}
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "session ID requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	// Cookie cross-site: el frontend vive en otro origen que la API.
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    out.SessionToken,
		Expires:  time.Now().Add(h.uc.SessionTTL()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Idempotente: sin sesión válida igual se limpia el cookie y se responde 200.
	if err := h.uc.Logout(c.Context(), SessionToken(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Session
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(auth.ToUserResponse(CurrentUser(c)))
}
