package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort     string
	DatabaseDSN  string
	CORSOrigins  string
	CookieSecure bool // production'da true olmalı (https)
}

func Load() *Config {
	_ = godotenv.Load() // .env varsa yükle

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=lycia port=5432 sslmode=disable"),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		CookieSecure: getEnv("COOKIE_SECURE", "false") == "true",
	}

	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=lycia port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgini tanımla.")
	}
	if !cfg.CookieSecure {
		log.Println("[WARN] COOKIE_SECURE=false, oturum cookie'si sadece http üzerinden taşınacak. Production için true yap.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
