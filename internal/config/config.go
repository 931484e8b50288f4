package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DBName        string
	TelegramToken string
	PollPeriod    time.Duration
}

func Load() Config {
	return Config{
		DBName:        envOr("DB_PATH", defaultDBName),
		TelegramToken: getBotToken(),
		PollPeriod:    pollPeriod(),
	}
}

func getBotToken() string {
	if data, err := os.ReadFile("/run/secrets/telegram_bot_token"); err == nil {
		token := strings.TrimSpace(string(data))
		if token != "" {
			return token
		}
	}
	token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if token != "" {
		return token
	}
	log.Fatal("❌ Токен не найден: отсутствует и Docker Secret, и переменная окружения")
	return ""
}

func pollPeriod() time.Duration {
	if v := os.Getenv("POLL_SECONDS"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			return time.Duration(sec) * time.Second
		}
		log.Printf("Некорректный POLL_SECONDS %q, используется значение по умолчанию", v)
	}
	return defaultPollPeriod
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

const (
	defaultDBName     = "bot.db"
	defaultPollPeriod = 20 * time.Second
)
