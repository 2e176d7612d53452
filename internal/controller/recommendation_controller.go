package controller

import (
	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/pkg/serverutils"
	"dr-dine-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	Recommend(ctx *fiber.Ctx) error
}

type recommendationController struct {
	service service.IRecommendationService
}

func NewRecommendationController(service service.IRecommendationService) IRecommendationController {
	return &recommendationController{service: service}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	r.Post("/recommendations", sessionGuard, c.Recommend)
}

func (c *recommendationController) Recommend(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	var req dto.RecommendRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
		}
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Recommend(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Recommendations", res))
}
