package controller

import (
	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/pkg/serverutils"
	"dr-dine-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFoodController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	ScanMenu(ctx *fiber.Ctx) error
}

type foodController struct {
	service service.IFoodService
}

func NewFoodController(service service.IFoodService) IFoodController {
	return &foodController{service: service}
}

func (c *foodController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	h := r.Group("/food")
	h.Use(sessionGuard)
	h.Get("/", c.Get)
	h.Put("/", c.Update)
	h.Post("/menu-scan", c.ScanMenu)
}

func (c *foodController) Get(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	res, err := c.service.Get(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Food items", res))
}

func (c *foodController) Update(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	var req dto.UpdateFoodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Update(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Food items updated", res))
}

func (c *foodController) ScanMenu(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	file, err := ctx.FormFile("menu")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Menu image is required"))
	}

	data, err := readMultipartFile(file)
	if err != nil {
		return err
	}

	res, err := c.service.ScanMenu(ctx.Context(), sessionId, file.Filename, data)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Menu scanned", res))
}
