package bootstrap

import (
	"context"
	"log"

	"dr-dine-be/internal/config"
	"dr-dine-be/internal/controller"
	"dr-dine-be/internal/pkg/logger"
	"dr-dine-be/internal/repository/memory"
	"dr-dine-be/internal/repository/unitofwork"
	"dr-dine-be/internal/service"
	"dr-dine-be/pkg/chatbot"
	"dr-dine-be/pkg/document"
	"dr-dine-be/pkg/recommend"
	"dr-dine-be/pkg/suitability"

	pktNats "dr-dine-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController        controller.ISessionController
	FoodController           controller.IFoodController
	ProfileController        controller.IProfileController
	RecommendationController controller.IRecommendationController
	ChatbotController        controller.IChatbotController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// Document text extraction (PDF + OCR)
	ocrEngine := document.NewOCREngine()
	if !ocrEngine.IsAvailable() {
		log.Printf("[WARN] tesseract binary not found; image uploads will fail until it is installed")
	}
	extractor := document.NewExtractor(ocrEngine)

	// Suitability model artifacts. The server cannot produce
	// recommendations without them, so a load failure is fatal.
	predictor, err := suitability.LoadPredictor(
		cfg.Model.EncoderPath,
		cfg.Model.ClassifierPath,
		cfg.Model.DecoderPath,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load suitability model: %v", err)
	}

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	engineOpts := []recommend.Option{}
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Suitability verdicts will not be cached", err)
	} else {
		engineOpts = append(engineOpts, recommend.WithVerdictCache(recommend.NewRedisVerdictCache(rdb)))
	}

	engine := recommend.NewEngine(predictor, engineOpts...)
	responder := chatbot.NewResponder()

	publisherService := service.NewPublisherService(cfg.Topics.ReportScanned, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.ReportScanned,
		uowFactory,
		sysLogger,
	)

	sessionService := service.NewSessionService(uowFactory, sessionRepo, cfg.App.SessionSecret)
	foodService := service.NewFoodService(sessionRepo, extractor, sysLogger)
	profileService := service.NewProfileService(sessionRepo, extractor, publisherService, natsPub, sysLogger)
	recommendationService := service.NewRecommendationService(sessionRepo, engine, natsPub, sysLogger)
	chatbotService := service.NewChatbotService(uowFactory, sessionRepo, responder, extractor)

	// 3. Controllers
	return &Container{
		SessionController:        controller.NewSessionController(sessionService),
		FoodController:           controller.NewFoodController(foodService),
		ProfileController:        controller.NewProfileController(profileService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		ChatbotController:        controller.NewChatbotController(chatbotService),

		ConsumerService: consumerService,
	}
}
