package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParamID parses a path parameter as a UUID. ok is false for anything else;
// such an id can never match a stored row.
func ParamID(ctx *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
