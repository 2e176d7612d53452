package controller

import (
	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/pkg/serverutils"
	"dr-dine-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	Create(ctx *fiber.Ctx) error
	GetPage(ctx *fiber.Ctx) error
	UpdatePage(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	h := r.Group("/session")
	h.Post("/", c.Create)
	h.Get("/page", sessionGuard, c.GetPage)
	h.Put("/page", sessionGuard, c.UpdatePage)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res, err := c.service.Create(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *sessionController) GetPage(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	res, err := c.service.GetPage(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Current page", res))
}

func (c *sessionController) UpdatePage(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	var req dto.UpdatePageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdatePage(ctx.Context(), sessionId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Page updated", nil))
}
