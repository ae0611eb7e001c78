package config

import (
	"os"
	"strings"
)

type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	Kafka   KafkaConfig
	JWT     JWTConfig
	Sentry  SentryConfig
}

type ServerConfig struct {
	Host string // Адрес хоста (по умолчанию 0.0.0.0)
	Port string // Порт сервера (по умолчанию 8085)
}

type MongoDBConfig struct {
	URI      string // URI подключения к MongoDB
	Database string // Имя базы данных
	// Имена коллекций задаются конфигурацией, а не хардкодом,
	// чтобы тесты могли работать с отдельными коллекциями
	BookmarkCollection string
	LikeCollection     string
	ReviewCollection   string
}

type KafkaConfig struct {
	Brokers []string // Список брокеров Kafka (формат: host:port)
	Topic   string   // Топик для событий пользовательского контента
}

type JWTConfig struct {
	Secret string // Секретный ключ для проверки JWT токенов (должен совпадать с Auth Service)
}

type SentryConfig struct {
	DSN string // DSN для отправки ошибок в Sentry (пустой = выключено)
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8085"),
		},
		MongoDB: MongoDBConfig{
			URI:                getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:           getEnv("MONGODB_DATABASE", "ugc_service"),
			BookmarkCollection: getEnv("MONGODB_BOOKMARK_COLLECTION", "bookmarks"),
			LikeCollection:     getEnv("MONGODB_LIKE_COLLECTION", "likes"),
			ReviewCollection:   getEnv("MONGODB_REVIEW_COLLECTION", "reviews"),
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "ugc_events"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		},
		Sentry: SentryConfig{
			DSN: getEnv("SENTRY_DSN", ""),
		},
	}, nil
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
