package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gpstore/internal/domain"
	applog "gpstore/internal/log"
	"gpstore/internal/store"
)

// RequireUser rejects requests while no user is logged in.
func RequireUser(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if st.User() == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		return c.Next()
	}
}

// RequireAdmin rejects requests unless the logged-in user has the admin role.
func RequireAdmin(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := st.User()
		if u == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		if u.Role != domain.RoleAdmin {
			applog.Security(c, "authz.admin.deny", map[string]any{"user": u.ID})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin only"})
		}
		return c.Next()
	}
}
