package service

import (
	"context"
	"encoding/json"
	"time"

	"dr-dine-be/internal/dto"
	"dr-dine-be/internal/entity"
	"dr-dine-be/internal/pkg/logger"
	"dr-dine-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains report-scanned events off the internal bus and
// persists the audit rows, keeping extraction requests free of that write.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishReportScannedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal report scan message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads never become valid, do not retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	scan := entity.ReportScan{
		Id:         uuid.New(),
		SessionId:  payload.SessionId,
		UserIndex:  payload.UserIndex,
		Source:     payload.Source,
		Conditions: payload.Conditions,
		Chars:      payload.Chars,
		CreatedAt:  time.Now(),
	}

	if err := uow.ReportScanRepository().Create(ctx, &scan); err != nil {
		cs.log.Error("consumer", "Failed to persist report scan", map[string]interface{}{
			"error":      err.Error(),
			"session_id": payload.SessionId.String(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "Report scan persisted", map[string]interface{}{
		"session_id": payload.SessionId.String(),
		"user_index": payload.UserIndex,
		"conditions": len(payload.Conditions),
	})
	msg.Ack()
}
