package service

import (
	"context"

	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/pkg/logger"
	"dr-dine-be/internal/repository/memory"
	"dr-dine-be/pkg/events"
	"dr-dine-be/pkg/foodlist"
	pktNats "dr-dine-be/pkg/nats"
	"dr-dine-be/pkg/recommend"

	"github.com/gofiber/fiber/v2"
)

type IRecommendationService interface {
	Recommend(ctx context.Context, sessionId string, req *dto.RecommendRequest) (*dto.RecommendResponse, error)
}

type recommendationService struct {
	sessionRepo    *memory.SessionRepository
	engine         *recommend.Engine
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewRecommendationService(
	sessionRepo *memory.SessionRepository,
	engine *recommend.Engine,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		sessionRepo:    sessionRepo,
		engine:         engine,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

// Recommend runs the suitability filter for every filled user slot. Users
// without detected conditions get the explicit no_conditions state rather
// than a vacuously-true filter pass; that guard lives here, not inside the
// engine. A classifier failure aborts this request only.
func (s *recommendationService) Recommend(ctx context.Context, sessionId string, req *dto.RecommendRequest) (*dto.RecommendResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}

	foods := foodlist.Parse(session.FoodItems)
	if len(foods) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Please provide food items.")
	}

	topN := req.TopN
	if topN <= 0 {
		topN = recommend.DefaultTopN
	}

	resp := &dto.RecommendResponse{}
	served := 0
	for i, profile := range session.Users {
		result := dto.UserRecommendation{UserIndex: i}

		switch {
		case profile == nil:
			result.Status = dto.RecommendationStatusEmptySlot
		case len(profile.Conditions) == 0:
			result.Status = dto.RecommendationStatusNoConditions
		default:
			picked, err := s.engine.Recommend(ctx, foods, profile.Conditions, topN)
			if err != nil {
				return nil, err
			}
			if len(picked) == 0 {
				result.Status = dto.RecommendationStatusNoSuitable
			} else {
				result.Status = dto.RecommendationStatusOK
				result.Foods = picked
				served++
			}
		}

		resp.Results = append(resp.Results, result)
	}

	s.log.Info("recommend", "Recommendations computed", map[string]interface{}{
		"session_id":   sessionId,
		"foods":        len(foods),
		"users_served": served,
	})

	if s.eventPublisher != nil {
		evt := events.NewRecommendationServed(sessionId, len(foods), served)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("recommend", "Failed to publish event", map[string]interface{}{"error": err.Error()})
		}
	}

	return resp, nil
}
