package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                string
	JwtSecret           string
	TokenExpireHours    int
	MongodbDatabaseUrl  string
	MongodbDatabaseName string
	Storage             string
	RedisUrl            string
	RedisPassword       string
	CorsAllowedOrigins  []string
	SentryDns           string
	SentryRelease       string
	PrintErrors         bool
	LogLevel            string
	LogFormat           string
	RequestTimeoutSec   int
	BcryptCost          int
}

const (
	StorageMongodb = "mongodb"
	StorageMemory  = "memory"
)

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

// SetConfigs replaces the loaded configs, used by tests and embedded setups.
func SetConfigs(c ConfigStruct) {
	configs = c
}

func (c ConfigStruct) TokenExpire() time.Duration {
	return time.Duration(c.TokenExpireHours) * time.Hour
}

func (c ConfigStruct) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = getEnv("PORT", "3000")
	configs.JwtSecret = os.Getenv("JWT_SECRET")
	configs.TokenExpireHours = getEnvInt("TOKEN_EXPIRE_HOURS", 168)
	configs.MongodbDatabaseUrl = getEnv("MONGODB_DATABASE_URL", "mongodb://localhost:27017")
	configs.MongodbDatabaseName = getEnv("MONGODB_DATABASE_NAME", "movies")
	configs.Storage = strings.ToLower(getEnv("STORAGE", StorageMongodb))
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.CorsAllowedOrigins = splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
	configs.LogLevel = getEnv("LOG_LEVEL", "info")
	configs.LogFormat = getEnv("LOG_FORMAT", "json")
	configs.RequestTimeoutSec = getEnvInt("REQUEST_TIMEOUT_SEC", 10)
	configs.BcryptCost = getEnvInt("BCRYPT_COST", 10)
}

func getEnv(key string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitOrigins(value string) []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(value, "---") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
