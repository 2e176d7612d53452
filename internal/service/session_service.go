package service

import (
	"context"
	"fmt"
	"time"

	"dr-dine-be/internal/constant"
	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/entity"
	"dr-dine-be/internal/pkg/serverutils"
	"dr-dine-be/internal/repository/memory"
	"dr-dine-be/internal/repository/unitofwork"
	"dr-dine-be/pkg/chatbot"
	"dr-dine-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetPage(ctx context.Context, sessionId string) (*dto.GetPageResponse, error)
	UpdatePage(ctx context.Context, sessionId string, req *dto.UpdatePageRequest) error
}

type sessionService struct {
	uowFactory    unitofwork.RepositoryFactory
	sessionRepo   *memory.SessionRepository
	sessionSecret string
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	sessionSecret string,
) ISessionService {
	return &sessionService{
		uowFactory:    uowFactory,
		sessionRepo:   sessionRepo,
		sessionSecret: sessionSecret,
	}
}

// Create initializes a fresh session: in-memory form state with the default
// page, a persisted chat session seeded with the assistant greeting, and a
// signed token the client sends back on every call.
func (s *sessionService) Create(ctx context.Context) (*dto.CreateSessionResponse, error) {
	sessionId := uuid.New()

	session := store.NewSession(sessionId.String())
	s.sessionRepo.Save(session)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chatSession := entity.ChatSession{
		Id:        sessionId,
		Title:     "Dr. Dine",
		CreatedAt: now,
	}
	greeting := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          chatbot.Greeting,
		Role:          constant.ChatMessageRoleAssistant,
		ChatSessionId: sessionId,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &greeting); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	token, err := serverutils.NewSessionToken(s.sessionSecret, sessionId.String())
	if err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{
		SessionId: sessionId,
		Token:     token,
		Page:      session.Page,
	}, nil
}

func (s *sessionService) GetPage(ctx context.Context, sessionId string) (*dto.GetPageResponse, error) {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}
	return &dto.GetPageResponse{Page: session.Page}, nil
}

func (s *sessionService) UpdatePage(ctx context.Context, sessionId string, req *dto.UpdatePageRequest) error {
	session, ok := s.sessionRepo.Get(sessionId)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}
	if !store.ValidPage(req.Page) {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unknown page %q", req.Page))
	}
	session.Page = req.Page
	s.sessionRepo.Save(session)
	return nil
}
