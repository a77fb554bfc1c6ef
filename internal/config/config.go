package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	ServerPort     string        `env:"SERVER_PORT"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	SessionSecret  string        `env:"SESSION_SECRET,required"`
	MigrateOnStart bool          `env:"MIGRATE_ON_START" envDefault:"true"`

	// Пул соединений с БД
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`

	// Настройки для MinIO (загрузка изображений). Пустой endpoint отключает загрузку.
	Minio struct {
		Endpoint        string `env:"MINIO_ENDPOINT"`
		AccessKeyID     string `env:"MINIO_ACCESS_KEY_ID"`
		SecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY"`
		UseSSL          bool   `env:"MINIO_USE_SSL"`
		BucketName      string `env:"MINIO_BUCKET_NAME" envDefault:"fyyur-images"`
		Region          string `env:"MINIO_REGION" envDefault:"us-east-1"`
		PublicURL       string `env:"MINIO_PUBLIC_URL"`
	}

	// RabbitMQ для событий бронирования. Пустой URL отключает публикацию.
	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"fyyur_booking_events"`
	}
}

// MinioEnabled сообщает, настроено ли хранилище изображений.
func (c *Config) MinioEnabled() bool {
	return c.Minio.Endpoint != ""
}

// RabbitMQEnabled сообщает, настроена ли очередь событий.
func (c *Config) RabbitMQEnabled() bool {
	return c.RabbitMQ.RabbitMQURL != ""
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	if cfg.MinioEnabled() && (cfg.Minio.AccessKeyID == "" || cfg.Minio.SecretAccessKey == "") {
		return nil, fmt.Errorf("MINIO_ACCESS_KEY_ID и MINIO_SECRET_ACCESS_KEY обязательны при заданном MINIO_ENDPOINT")
	}

	return &cfg, nil
}
