package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv              string
	Port                string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	JWTSecret           string
	OriginURL           string
	RedisURL            string
	RedisAddr           string
	RedisPassword       string
	SMTPHost            string
	SMTPPort            string
	SMTPUser            string
	SMTPPass            string
	SMTPFrom            string
	OrderStoreURL       string
	MailRelayURL        string
	CatalogURL          string
	CheckoutStepTimeout time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	stepTimeout, err := time.ParseDuration(getEnv("CHECKOUT_STEP_TIMEOUT", "15s"))
	if err != nil {
		log.Printf("Invalid CHECKOUT_STEP_TIMEOUT, using 15s: %v", err)
		stepTimeout = 15 * time.Second
	}

	port := getEnv("APP_PORT", getEnv("PORT", "8082"))
	selfURL := "http://localhost:" + port

	AppConfig = &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		Port:                port,
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "furniture_shop"),
		DBSSLMode:           getEnv("DB_SSLMODE", "disable"),
		JWTSecret:           getEnv("JWT_SECRET", "secret"),
		OriginURL:           getEnv("ORIGIN_URL", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnv("SMTP_PORT", "587"),
		SMTPUser:            getEnv("SMTP_USER", ""),
		SMTPPass:            getEnv("SMTP_PASS", ""),
		SMTPFrom:            getEnv("SMTP_FROM", ""),
		OrderStoreURL:       getEnv("ORDER_STORE_URL", selfURL),
		MailRelayURL:        getEnv("MAIL_RELAY_URL", selfURL),
		CatalogURL:          getEnv("CATALOG_URL", ""),
		CheckoutStepTimeout: stepTimeout,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
