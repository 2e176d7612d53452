package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/pkg/logger"
	"dr-dine-be/internal/repository/memory"
	"dr-dine-be/pkg/document"
	"dr-dine-be/pkg/events"
	"dr-dine-be/pkg/health"
	pktNats "dr-dine-be/pkg/nats"
	"dr-dine-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ReportUpload is an optional uploaded medical report accompanying a profile
// update.
type ReportUpload struct {
	Filename string
	Data     []byte
}

type IProfileService interface {
	Upsert(ctx context.Context, sessionId string, userIndex int, req *dto.UpdateProfileRequest, report *ReportUpload) (*dto.ProfileResponse, error)
	GetAll(ctx context.Context, sessionId string) (*dto.GetProfilesResponse, error)
}

type profileService struct {
	sessionRepo      *memory.SessionRepository
	extractor        *document.Extractor
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewProfileService(
	sessionRepo *memory.SessionRepository,
	extractor *document.Extractor,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IProfileService {
	return &profileService{
		sessionRepo:      sessionRepo,
		extractor:        extractor,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

// Upsert overwrites one user slot. The derived fields (BMI, category,
// conditions) are always recomputed together with the inputs so the slot can
// never hold a stale derivation. An unreadable report degrades to an empty
// condition set plus a notice instead of failing the update.
func (s *profileService) Upsert(ctx context.Context, sessionId string, userIndex int, req *dto.UpdateProfileRequest, report *ReportUpload) (*dto.ProfileResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}
	if userIndex < 0 || userIndex >= store.MaxUsers {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("user index %d out of range [0,%d)", userIndex, store.MaxUsers))
	}

	bmi, err := health.BMI(req.WeightKg, req.HeightCm)
	if err != nil {
		return nil, err
	}

	var conditions []string
	var notice string
	if report != nil {
		text, err := s.extractor.Extract(ctx, report.Filename, report.Data)
		var unreadable *document.UnreadableError
		switch {
		case errors.As(err, &unreadable):
			notice = "Error reading file"
			s.log.Warn("profile", "Report unreadable, continuing without conditions", map[string]interface{}{
				"session_id": sessionId,
				"user_index": userIndex,
				"error":      err.Error(),
			})
		case err != nil:
			return nil, err
		default:
			conditions = health.DetectConditions(text)
			s.publishReportScanned(ctx, sessionId, userIndex, report.Filename, conditions, len(text))
		}
	}

	profile := &store.UserProfile{
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
		BMI:         bmi,
		BMICategory: health.CategoryFor(bmi),
		Conditions:  conditions,
	}
	session.Users[userIndex] = profile
	s.sessionRepo.Save(session)

	return profileToDTO(userIndex, profile, notice), nil
}

func (s *profileService) GetAll(ctx context.Context, sessionId string) (*dto.GetProfilesResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}

	resp := &dto.GetProfilesResponse{}
	for i, profile := range session.Users {
		if profile == nil {
			continue
		}
		resp.Users = append(resp.Users, profileToDTO(i, profile, ""))
	}
	return resp, nil
}

func (s *profileService) publishReportScanned(ctx context.Context, sessionId string, userIndex int, filename string, conditions []string, chars int) {
	id, err := uuid.Parse(sessionId)
	if err != nil {
		return
	}

	source := "image"
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		source = "pdf"
	}

	payload, err := json.Marshal(dto.PublishReportScannedMessage{
		SessionId:  id,
		UserIndex:  userIndex,
		Source:     source,
		Conditions: conditions,
		Chars:      chars,
	})
	if err != nil {
		return
	}

	if err := s.publisherService.Publish(payload); err != nil {
		s.log.Warn("profile", "Failed to publish report scan event", map[string]interface{}{"error": err.Error()})
	}

	if s.eventPublisher != nil {
		evt := events.NewReportScanned(sessionId, userIndex, source, conditions)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("profile", "Failed to publish report scan to bus", map[string]interface{}{"error": err.Error()})
		}
	}
}

func profileToDTO(index int, p *store.UserProfile, notice string) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		UserIndex:   index,
		WeightKg:    p.WeightKg,
		HeightCm:    p.HeightCm,
		BMI:         p.BMI,
		BMICategory: string(p.BMICategory),
		Conditions:  p.Conditions,
		Notice:      notice,
	}
}
