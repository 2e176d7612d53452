package service

import (
	"context"
	"errors"
	"testing"

	"dr-dine-be/internal/repository/memory"
	"dr-dine-be/pkg/chatbot"
	"dr-dine-be/pkg/document"
	"dr-dine-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ context.Context, _ string, _ []byte) (string, error) {
	return s.text, s.err
}

func TestUploadDocumentStoresExtractedText(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	sessionRepo.Save(store.NewSession("s1"))
	svc := NewChatbotService(nil, sessionRepo, chatbot.NewResponder(), &stubExtractor{text: "Patient has Diabetes."})

	res, err := svc.UploadDocument(context.Background(), "s1", "report.pdf", []byte("%PDF"))

	assert.NoError(t, err)
	assert.Equal(t, "Patient has Diabetes.", res.Preview)
	assert.Equal(t, len("Patient has Diabetes."), res.Chars)

	session, ok := sessionRepo.Get("s1")
	assert.True(t, ok)
	assert.Equal(t, "Patient has Diabetes.", session.ExtractedText)
}

func TestUploadDocumentUnknownSession(t *testing.T) {
	svc := NewChatbotService(nil, memory.NewSessionRepository(), chatbot.NewResponder(), &stubExtractor{})

	_, err := svc.UploadDocument(context.Background(), "nope", "report.pdf", nil)

	// Expired or unknown sessions surface as a 404, not a 500.
	var fiberErr *fiber.Error
	assert.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}

func TestUploadDocumentPropagatesUnreadable(t *testing.T) {
	sessionRepo := memory.NewSessionRepository()
	sessionRepo.Save(store.NewSession("s1"))
	extractErr := &document.UnreadableError{Filename: "report.pdf", Err: errors.New("bad xref")}
	svc := NewChatbotService(nil, sessionRepo, chatbot.NewResponder(), &stubExtractor{err: extractErr})

	_, err := svc.UploadDocument(context.Background(), "s1", "report.pdf", nil)

	var unreadable *document.UnreadableError
	assert.True(t, errors.As(err, &unreadable))
}
