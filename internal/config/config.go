package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string
	RedisURL string

	AnalysisCacheSecs int

	RugcheckBaseURL    string
	DexScreenerBaseURL string

	TelegramBotToken string

	OpenAIAPIKey string
	OpenAIModel  string
}

func Load() *Config {
	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		RedisURL:         os.Getenv("REDIS_URL"),
	}

	cfg.Port = strings.TrimSpace(os.Getenv("PORT"))
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	cfg.AnalysisCacheSecs = 300
	if v := strings.TrimSpace(os.Getenv("ANALYSIS_CACHE_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AnalysisCacheSecs = n
		}
	}

	cfg.RugcheckBaseURL = strings.TrimSpace(os.Getenv("RUGCHECK_BASE_URL"))
	cfg.DexScreenerBaseURL = strings.TrimSpace(os.Getenv("DEXSCREENER_BASE_URL"))

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set, bot disabled")
	}

	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, advisor will be disabled")
	}

	cfg.OpenAIModel = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}

	return cfg
}
