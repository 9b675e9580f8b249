package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kyudon/police-intake/internal/dto"
	"github.com/kyudon/police-intake/internal/interactions"
	"github.com/kyudon/police-intake/internal/platform"
)

// InteractionHandler is the webhook endpoint: one signed POST in, one
// callback JSON out. Signature verification happens upstream in the
// middleware.
type InteractionHandler struct {
	router *interactions.Router
}

func NewInteractionHandler(router *interactions.Router) *InteractionHandler {
	return &InteractionHandler{router: router}
}

func (h *InteractionHandler) Handle(c *fiber.Ctx) error {
	var inter platform.Interaction
	if err := c.BodyParser(&inter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	return c.JSON(h.router.Dispatch(c.UserContext(), &inter))
}
