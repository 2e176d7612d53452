package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Model    ModelConfig
	Topics   TopicConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	SessionSecret      string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

// ModelConfig points at the serialized suitability artifacts consumed at
// startup. Their format and versioning is an external contract.
type ModelConfig struct {
	EncoderPath    string
	ClassifierPath string
	DecoderPath    string
}

type TopicConfig struct {
	ReportScanned string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			SessionSecret:      getEnv("SESSION_SECRET", "dr-dine-dev-secret"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Model: ModelConfig{
			EncoderPath:    getEnv("MODEL_ENCODER_PATH", "artifacts/vectorizer.json"),
			ClassifierPath: getEnv("MODEL_CLASSIFIER_PATH", "artifacts/food_recommendation_model.json"),
			DecoderPath:    getEnv("MODEL_DECODER_PATH", "artifacts/label_encoder.json"),
		},
		Topics: TopicConfig{
			ReportScanned: getEnv("REPORT_SCANNED_TOPIC_NAME", "REPORT_SCANNED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
