package service

import (
	"context"
	"fmt"
	"time"

	"dr-dine-be/internal/constant"
	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/entity"
	"dr-dine-be/internal/repository/memory"
	"dr-dine-be/internal/repository/specification"
	"dr-dine-be/internal/repository/unitofwork"
	"dr-dine-be/pkg/chatbot"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatbotService interface {
	GetHistory(ctx context.Context, sessionId string) (*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, sessionId string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	UploadDocument(ctx context.Context, sessionId string, filename string, data []byte) (*dto.UploadChatDocumentResponse, error)
}

type chatbotService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo *memory.SessionRepository
	responder   *chatbot.Responder
	extractor   documentExtractor
}

// documentExtractor narrows the extraction dependency for tests.
type documentExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (string, error)
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	responder *chatbot.Responder,
	extractor documentExtractor,
) IChatbotService {
	return &chatbotService{
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
		responder:   responder,
		extractor:   extractor,
	}
}

// GetHistory returns the transcript oldest-first.
func (cs *chatbotService) GetHistory(ctx context.Context, sessionId string) (*dto.GetChatHistoryResponse, error) {
	id, err := uuid.Parse(sessionId)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: id},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.GetChatHistoryResponse{Messages: make([]*dto.ChatMessageDTO, 0, len(messages))}
	for _, msg := range messages {
		resp.Messages = append(resp.Messages, &dto.ChatMessageDTO{
			Id:        msg.Id,
			Role:      msg.Role,
			Chat:      msg.Chat,
			CreatedAt: msg.CreatedAt,
		})
	}
	return resp, nil
}

// SendChat appends the user message, computes the rule-based reply against
// the session's extracted document text and appends the reply, all in one
// transaction.
func (cs *chatbotService) SendChat(ctx context.Context, sessionId string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	id, err := uuid.Parse(sessionId)
	if err != nil {
		return nil, fmt.Errorf("invalid session id: %w", err)
	}
	session, ok := cs.sessionRepo.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}

	reply := cs.responder.Respond(req.Chat, session.ExtractedText)
	now := time.Now()

	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          req.Chat,
		Role:          constant.ChatMessageRoleUser,
		ChatSessionId: id,
		CreatedAt:     now,
	}
	assistantMessage := entity.ChatMessage{
		Id:            uuid.New(),
		Chat:          reply,
		Role:          constant.ChatMessageRoleAssistant,
		ChatSessionId: id,
		CreatedAt:     now.Add(time.Millisecond), // keep transcript ordering stable
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &assistantMessage); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		Sent:  messageToDTO(&userMessage),
		Reply: messageToDTO(&assistantMessage),
	}, nil
}

// UploadDocument extracts a report or menu uploaded on the chatbot page and
// stores its text on the session for the report/condition chat rule.
func (cs *chatbotService) UploadDocument(ctx context.Context, sessionId string, filename string, data []byte) (*dto.UploadChatDocumentResponse, error) {
	session, ok := cs.sessionRepo.Get(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found or expired")
	}

	text, err := cs.extractor.Extract(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	session.ExtractedText = text
	cs.sessionRepo.Save(session)

	preview := text
	if runes := []rune(preview); len(runes) > 1000 {
		preview = string(runes[:1000])
	}

	return &dto.UploadChatDocumentResponse{
		Preview: preview,
		Chars:   len(text),
	}, nil
}

func messageToDTO(msg *entity.ChatMessage) *dto.ChatMessageDTO {
	return &dto.ChatMessageDTO{
		Id:        msg.Id,
		Role:      msg.Role,
		Chat:      msg.Chat,
		CreatedAt: msg.CreatedAt,
	}
}
