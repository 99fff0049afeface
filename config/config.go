package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment. A .env
// file is honored when present.
type Config struct {
	ServerAddr    string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	TemplatesGlob string

	// Per-IP rate limit; zero RateLimitRPS disables the limiter.
	RateLimitRPS   float64
	RateLimitBurst int

	// Cron expression for the nightly workload summary job.
	SummarySchedule string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerAddr:      getenv("SERVER_ADDR", ":8080"),
		DBUser:          getenv("DB_USER", "root"),
		DBPassword:      getenv("DB_PASSWORD", ""),
		DBHost:          getenv("DB_HOST", "localhost"),
		DBPort:          getenv("DB_PORT", "3306"),
		DBName:          getenv("DB_NAME", "todolists"),
		TemplatesGlob:   getenv("TEMPLATES_GLOB", "templates/*.html"),
		RateLimitRPS:    getfloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  getint("RATE_LIMIT_BURST", 40),
		SummarySchedule: getenv("SUMMARY_SCHEDULE", "0 0 * * *"),
	}
}

// DSN renders the MySQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getfloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
