package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/pkg/jwt"
)

// MaintenanceKeyHeader cabecera con la clave de mantenimiento.
const MaintenanceKeyHeader = "X-Maintenance-Key"

// maintenanceActor actor registrado en auditoría cuando se entra con la clave.
const maintenanceActor = "maintenance-key"

// RequireMaintenance protege las operaciones de mantenimiento.
// Con X-Maintenance-Key la clave se compara con el hash bcrypt configurado;
// sin ella se exige un JWT con rol admin.
//   - 401 si la clave no coincide o falta el token.
//   - 403 si el token no es de admin o la clave está deshabilitada (hash vacío).
func RequireMaintenance(jwtSecret, keyHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(MaintenanceKeyHeader)
		if key == "" {
			userID, role, fail := bearerClaims(c, jwtSecret)
			if fail != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fail)
			}
			if role != jwt.RoleAdmin {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "mantenimiento reservado a administradores"})
			}
			c.Locals(LocalUserID, userID)
			c.Locals(LocalRole, role)
			return c.Next()
		}
		if keyHash == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "clave de mantenimiento deshabilitada"})
		}
		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_MAINTENANCE_KEY", Message: "clave de mantenimiento incorrecta"})
		}
		c.Locals(LocalUserID, maintenanceActor)
		c.Locals(LocalRole, jwt.RoleAdmin)
		return c.Next()
	}
}
