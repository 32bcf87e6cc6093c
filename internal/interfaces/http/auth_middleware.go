package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

// Locals key para el usuario resuelto en Fiber.
const LocalUser = "current_user"

// SessionCookieName cookie donde el frontend guarda el token de sesión.
const SessionCookieName = "session_token"

// UserResolver resuelve un token de sesión opaco al usuario autenticado.
// Lo implementa auth.AuthUseCase.
type UserResolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// SessionMiddleware valida el token de sesión (cookie o Bearer) contra el
// store y deja el usuario resuelto en c.Locals. Sin token o con token
// inválido/vencido responde 401 y no ejecuta el handler: ninguna mutación
// ocurre en peticiones no autenticadas.
func SessionMiddleware(resolver UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := SessionToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "sesión requerida"})
		}
		user, err := resolver.Resolve(c.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SESSION", Message: "sesión inválida o expirada"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireAdmin autoriza solo a usuarios con rol admin. Debe ir después de
// SessionMiddleware; es el único punto donde se chequea el rol.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "sesión requerida"})
		}
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol admin"})
		}
		return c.Next()
	}
}

// CurrentUser devuelve el usuario del contexto (después del middleware de sesión).
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// SessionToken extrae el token: cookie primero, luego Authorization Bearer.
func SessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookieName); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
