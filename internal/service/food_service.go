package service

import (
	"context"

	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/pkg/logger"
	"dr-dine-be/internal/repository/memory"
	"dr-dine-be/pkg/document"
	"dr-dine-be/pkg/foodlist"

	"github.com/gofiber/fiber/v2"
)

type IFoodService interface {
	Get(ctx context.Context, sessionId string) (*dto.FoodListResponse, error)
	Update(ctx context.Context, sessionId string, req *dto.UpdateFoodRequest) (*dto.FoodListResponse, error)
	ScanMenu(ctx context.Context, sessionId string, filename string, data []byte) (*dto.FoodListResponse, error)
}

type foodService struct {
	sessionRepo *memory.SessionRepository
	extractor   *document.Extractor
	log         logger.ILogger
}

func NewFoodService(
	sessionRepo *memory.SessionRepository,
	extractor *document.Extractor,
	log logger.ILogger,
) IFoodService {
	return &foodService{
		sessionRepo: sessionRepo,
		extractor:   extractor,
		log:         log,
	}
}

func (s *foodService) Get(ctx context.Context, sessionId string) (*dto.FoodListResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}
	return &dto.FoodListResponse{
		Items:  session.FoodItems,
		Parsed: foodlist.Parse(session.FoodItems),
	}, nil
}

// Update replaces the food buffer with manually entered text.
func (s *foodService) Update(ctx context.Context, sessionId string, req *dto.UpdateFoodRequest) (*dto.FoodListResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}

	session.FoodItems = req.Items
	s.sessionRepo.Save(session)

	return &dto.FoodListResponse{
		Items:  session.FoodItems,
		Parsed: foodlist.Parse(session.FoodItems),
	}, nil
}

// ScanMenu OCRs an uploaded menu image and replaces the food buffer with the
// recognized items. Extraction failures propagate as unreadable-document
// errors; the buffer keeps its previous value.
func (s *foodService) ScanMenu(ctx context.Context, sessionId string, filename string, data []byte) (*dto.FoodListResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}

	text, err := s.extractor.Extract(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	items := foodlist.Parse(text)
	session.FoodItems = foodlist.Join(items)
	s.sessionRepo.Save(session)

	s.log.Info("food", "Menu scanned", map[string]interface{}{
		"session_id": sessionId,
		"items":      len(items),
	})

	return &dto.FoodListResponse{
		Items:  session.FoodItems,
		Parsed: items,
	}, nil
}
