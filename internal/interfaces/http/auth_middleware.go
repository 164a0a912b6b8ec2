package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/pkg/jwt"
)

// Locals keys para los datos del usuario autenticado en Fiber.
const (
	LocalUserID      = "user_id"
	LocalDNI         = "dni"
	LocalTipoUsuario = "tipo_usuario"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, DNI y tipo de
// usuario a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, dni, tipoUsuario, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalDNI, dni)
		c.Locals(LocalTipoUsuario, tipoUsuario)
		return c.Next()
	}
}

// RequireRole exige que el tipo de usuario del token esté entre los roles
// dados. Se encadena después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tipo := GetTipoUsuario(c)
		for _, r := range roles {
			if tipo == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetDNI devuelve el DNI del contexto (después del middleware de auth).
func GetDNI(c *fiber.Ctx) string {
	v := c.Locals(LocalDNI)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTipoUsuario devuelve el tipo de usuario del contexto.
func GetTipoUsuario(c *fiber.Ctx) string {
	v := c.Locals(LocalTipoUsuario)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
