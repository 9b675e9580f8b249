package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Platform boundary
	PublicKey  string // hex-encoded ed25519 key for interaction webhooks
	BotToken   string
	APIBaseURL string
	APITimeout time.Duration

	// Ops API
	JWTSecret       string
	JWTAccessExpiry time.Duration
	OpsUsername     string
	OpsPasswordHash string // bcrypt
	AdminToken      string
	AdminUserIDs    string // CSV of platform user ids with elevated access

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "police_intake"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		PublicKey:  getEnv("INTERACTION_PUBLIC_KEY", ""),
		BotToken:   getEnv("BOT_TOKEN", ""),
		APIBaseURL: getEnv("PLATFORM_API_URL", "https://discord.com/api/v10"),
		APITimeout: parseDuration(getEnv("PLATFORM_API_TIMEOUT", "10s")),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		JWTAccessExpiry: parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		OpsUsername:     getEnv("OPS_USERNAME", ""),
		OpsPasswordHash: getEnv("OPS_PASSWORD_HASH", ""),
		AdminToken:      getEnv("ADMIN_TOKEN", ""),
		AdminUserIDs:    getEnv("ADMIN_USER_IDS", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

// AdminIDs returns the configured elevated user ids as a set.
func (c *Config) AdminIDs() map[string]bool {
	ids := make(map[string]bool)
	for _, p := range strings.Split(c.AdminUserIDs, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ids[trimmed] = true
		}
	}
	return ids
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
