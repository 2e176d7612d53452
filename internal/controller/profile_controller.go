package controller

import (
	"strconv"

	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/pkg/serverutils"
	"dr-dine-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler)
	Upsert(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type profileController struct {
	service service.IProfileService
}

func NewProfileController(service service.IProfileService) IProfileController {
	return &profileController{service: service}
}

func (c *profileController) RegisterRoutes(r fiber.Router, sessionGuard fiber.Handler) {
	h := r.Group("/users")
	h.Use(sessionGuard)
	h.Put("/:index", c.Upsert)
	h.Get("/", c.GetAll)
}

func (c *profileController) Upsert(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	userIndex, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "User index must be a number"))
	}

	weight, err := strconv.ParseFloat(ctx.FormValue("weight"), 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Weight must be a number"))
	}
	height, err := strconv.ParseFloat(ctx.FormValue("height"), 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Height must be a number"))
	}

	req := dto.UpdateProfileRequest{WeightKg: weight, HeightCm: height}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	var report *service.ReportUpload
	if file, err := ctx.FormFile("report"); err == nil {
		data, err := readMultipartFile(file)
		if err != nil {
			return err
		}
		report = &service.ReportUpload{Filename: file.Filename, Data: data}
	}

	res, err := c.service.Upsert(ctx.Context(), sessionId, userIndex, &req, report)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile saved", res))
}

func (c *profileController) GetAll(ctx *fiber.Ctx) error {
	sessionId := ctx.Locals("session_id").(string)

	res, err := c.service.GetAll(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("User profiles", res))
}
