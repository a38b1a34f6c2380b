package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"foodgram/internal/pkg/validator"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL" envDefault:"foodgram.db" validate:"required"`
	ServerPort  string `env:"SERVER_PORT" envDefault:"8080" validate:"required,numeric"`

	JWTSecret string        `env:"JWT_SECRET,required" validate:"min=16"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Каталог для сохранения картинок рецептов
	MediaDir string `env:"MEDIA_DIR" envDefault:"media" validate:"required"`

	// Размер страницы выдачи рецептов по умолчанию
	PageSize int `env:"PAGE_SIZE" envDefault:"6" validate:"min=1,max=100"`
}

// Load загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if problems := validator.Validate(cfg); problems != nil {
		return nil, fmt.Errorf("invalid config: %v", problems)
	}
	return &cfg, nil
}
