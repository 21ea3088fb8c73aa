package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/aazdagabde/smart-hire/pkg/auth"
)

// actorID reads the authenticated user id set by the JWT middleware.
func actorID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, _ := c.Locals("userId").(string)
	return uuid.Parse(userIDStr)
}

func actorRole(c *fiber.Ctx) auth.Role {
	roleStr, _ := c.Locals("role").(string)
	return auth.Role(roleStr)
}
