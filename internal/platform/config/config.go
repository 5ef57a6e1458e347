package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string
	BaseURL string

	// Session cookie lifetime; the server-side session itself never expires.
	SessionCookieMaxAge time.Duration

	SessionBackend string // "memory" or "redis"
	UserBackend    string // "memory" or "postgres"

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	R2Endpoint        string
	R2Region          string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2Bucket          string
	R2PublicDomain    string

	UploadTokenSecret []byte
	UploadTokenTTL    time.Duration
	UploadPrefix      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIPort:             getEnv("API_PORT", "3000"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		SessionCookieMaxAge: time.Duration(getEnvAsInt("SESSION_COOKIE_MAX_AGE_DAYS", 7)) * 24 * time.Hour,
		SessionBackend:      getEnv("SESSION_BACKEND", "memory"),
		UserBackend:         getEnv("USER_BACKEND", "memory"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "lumina_site_db"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		R2Endpoint:        getEnv("R2_ENDPOINT", ""),
		R2Region:          getEnv("R2_REGION", "auto"),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:          getEnv("R2_BUCKET_NAME", ""),
		R2PublicDomain:    getEnv("R2_PUBLIC_DOMAIN", ""),

		UploadTokenSecret: []byte(getEnv("UPLOAD_TOKEN_SECRET", "defaultsecret")),
		UploadTokenTTL:    time.Duration(getEnvAsInt("UPLOAD_TOKEN_TTL_MINUTES", 15)) * time.Minute,
		UploadPrefix:      getEnv("UPLOAD_PREFIX", "uploads"),
	}

	cfg.DBConnStr = "host=" + cfg.DBHost +
		" port=" + cfg.DBPort +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" sslmode=" + cfg.DBSslMode

	return cfg
}

// UseS3 reports whether real R2/S3 credentials are configured; otherwise
// the in-memory mock store serves the file manager.
func (c *Config) UseS3() bool {
	return c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2Bucket != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
