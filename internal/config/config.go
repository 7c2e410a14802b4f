package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ServerPort string

	// DBUrl selects the gorm/postgres store. Empty keeps everything in memory.
	DBUrl string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Timezone               string
	AppointmentDurationMin int
	LockTTLSeconds         int

	// RateLimitPerMinute caps write requests per client IP. 0 disables it.
	RateLimitPerMinute int

	SeedFile        string
	SeedHorizonDays int

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBUrl: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		Timezone:               getEnv("CLINIC_TIMEZONE", "America/Sao_Paulo"),
		AppointmentDurationMin: getEnvInt("APPOINTMENT_DURATION_MIN", 30),
		LockTTLSeconds:         getEnvInt("LOCK_TTL_SECONDS", 10),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),

		SeedFile:        getEnv("SEED_FILE", ""),
		SeedHorizonDays: getEnvInt("SEED_HORIZON_DAYS", 14),

		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (c *Config) Validate() error {
	if c.AppointmentDurationMin <= 0 {
		return fmt.Errorf("APPOINTMENT_DURATION_MIN must be positive, got %d", c.AppointmentDurationMin)
	}
	if c.SeedHorizonDays <= 0 {
		return fmt.Errorf("SEED_HORIZON_DAYS must be positive, got %d", c.SeedHorizonDays)
	}
	if c.LockTTLSeconds <= 0 {
		return fmt.Errorf("LOCK_TTL_SECONDS must be positive, got %d", c.LockTTLSeconds)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", c.RateLimitPerMinute)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("CLINIC_TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) UsesDatabase() bool {
	return c.DBUrl != ""
}

func (c *Config) UsesRedis() bool {
	return c.RedisAddr != ""
}

func (c *Config) ExportEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) AppointmentDuration() time.Duration {
	return time.Duration(c.AppointmentDurationMin) * time.Minute
}

func (c *Config) LockTTL() time.Duration {
	return time.Duration(c.LockTTLSeconds) * time.Second
}
