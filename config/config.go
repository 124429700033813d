package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port string

	// Firebase / Firestore
	FirebaseProjectID       string
	FirebaseCredentialsPath string

	// Redis (rate limiter store; optional, falls back to in-memory)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CORS
	AllowedOrigins []string

	// Requests per minute per client IP on the public posting routes
	RateLimitPerMinute int64
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file, using environment variables")
	}

	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	rate, _ := strconv.ParseInt(os.Getenv("RATE_LIMIT_PER_MINUTE"), 10, 64)
	if rate <= 0 {
		rate = 60
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := []string{"http://localhost:3000"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentialsPath == "" {
		credentialsPath = os.Getenv("FIREBASE_CREDENTIALS_PATH")
	}

	return &Config{
		Port: port,

		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsPath: credentialsPath,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		AllowedOrigins:     origins,
		RateLimitPerMinute: rate,
	}
}
