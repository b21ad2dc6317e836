package identity

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AnonymousID is the bucket all guest-submitted records are stored under.
// Guests share one scope; it is never reachable once a caller supplies a
// real X-User-Id.
var AnonymousID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// CallerID extracts the resolved caller UUID from Fiber context locals.
func CallerID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals("user_id").(uuid.UUID); ok {
		return id
	}
	return AnonymousID
}

// IsGuest reports whether the request arrived without an X-User-Id header.
func IsGuest(c *fiber.Ctx) bool {
	guest, ok := c.Locals("is_guest").(bool)
	return !ok || guest
}
