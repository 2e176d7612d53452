package controller

import (
	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/pkg/serverutils"
	"dr-dine-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	GetHistory(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	UploadDocument(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	h := r.Group("/chat")
	h.Use(sessionGuard)
	h.Get("/history", c.GetHistory)
	h.Post("/", c.SendChat)
	h.Post("/document", c.UploadDocument)
}

func (c *chatbotController) GetHistory(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	res, err := c.service.GetHistory(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendChat(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message sent", res))
}

func (c *chatbotController) UploadDocument(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	file, err := ctx.FormFile("document")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Document is required"))
	}

	data, err := readMultipartFile(file)
	if err != nil {
		return err
	}

	res, err := c.service.UploadDocument(ctx.Context(), sessionId, file.Filename, data)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Document processed", res))
}
