package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`

		// Public base URL used when building signed retrieval links to this backend.
		PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Telegram struct {
		BotToken string `env:"BOT_TOKEN,required"`
		// Bot API base URL, overridable for self-hosted bot-api servers.
		APIBaseURL string `env:"TELEGRAM_API_BASE_URL" envDefault:"https://api.telegram.org"`
		// TTL in seconds for Mini App init-data expiration (0 disables the check).
		InitDataTTL int `env:"INIT_DATA_TTL" envDefault:"86400"`
	}

	Stripe struct {
		APIBaseURL string `env:"STRIPE_API_BASE_URL" envDefault:"https://api.stripe.com"`
	}

	Proof struct {
		// Secret for HMAC-signing retrieval URLs.
		SigningSecret string `env:"PROOF_SIGNING_SECRET,required"`
		// Validity window of issued retrieval URLs, in seconds. Default is one year.
		URLTTLSec int `env:"PROOF_URL_TTL_SEC" envDefault:"31536000"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// .env file is optional; in production the variables are set directly.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
