package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/repositories"
	"storefront/internal/services"
)

// AuthRequired is a Fiber middleware that checks for a valid JWT token and
// loads the authenticated user. The user's id and staff flag are stored in the
// request locals for subsequent handlers.
func AuthRequired(authService *services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		userID, _ := claims["user_id"].(string)
		// The staff flag is read from the database rather than trusted from
		// the token, so a revoked account or demoted staffer is cut off at the
		// next request.
		user, err := userRepo.GetByID(userID)
		if err != nil || !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Account is not available",
			})
		}

		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)
		c.Locals("is_staff", user.IsStaff)

		return c.Next()
	}
}

// OptionalAuth populates the user locals when a valid token accompanies the
// request but lets anonymous callers through. Public catalog reads use this so
// staff sessions still see their extended view.
func OptionalAuth(authService *services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Next()
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Next()
		}
		userID, _ := claims["user_id"].(string)
		user, err := userRepo.GetByID(userID)
		if err != nil || !user.IsActive {
			return c.Next()
		}

		c.Locals("user_id", user.ID)
		c.Locals("username", user.Username)
		c.Locals("is_staff", user.IsStaff)
		return c.Next()
	}
}

// StaffOnly rejects callers without the staff flag. Must run after
// AuthRequired.
func StaffOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isStaff, _ := c.Locals("is_staff").(bool)
		if !isStaff {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Staff access required",
			})
		}
		return c.Next()
	}
}
