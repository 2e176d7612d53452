package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"dr-dine-be/internal/entity"
	"dr-dine-be/internal/repository/specification"
	"dr-dine-be/internal/repository/unitofwork"
	"dr-dine-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ChatSessionRepository())
	assert.NotNil(t, uow.ChatMessageRepository())
	assert.NotNil(t, uow.ReportScanRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Chat transcript round trip", func(t *testing.T) {
		ctx := context.Background()
		sessionId := uuid.New()

		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		err = uow.ChatSessionRepository().Create(ctx, &entity.ChatSession{
			Id:        sessionId,
			Title:     "Dr. Dine",
			CreatedAt: time.Now(),
		})
		assert.NoError(t, err)

		err = uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
			Id:            uuid.New(),
			Chat:          "hello",
			Role:          "user",
			ChatSessionId: sessionId,
			CreatedAt:     time.Now(),
		})
		assert.NoError(t, err)

		messages, err := uow.ChatMessageRepository().FindAll(ctx,
			specification.ByChatSessionID{ChatSessionID: sessionId},
		)
		assert.NoError(t, err)
		assert.Len(t, messages, 1)
		assert.Equal(t, "hello", messages[0].Chat)
	})
}
