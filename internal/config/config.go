package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	Server    ServerConfig
	CORS      CORSConfig
	Optimizer OptimizerConfig
	Groq      GroqConfig
	Log       LogConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type JWTConfig struct {
	AccessSecret       string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// OptimizerConfig tunes the syscall performance subsystem. It is passed into
// the optimizer service explicitly; nothing reads these as process-wide state.
type OptimizerConfig struct {
	// PerformanceThreshold is the average duration in seconds above which a
	// syscall is flagged for optimization.
	PerformanceThreshold float64
	// RefreshInterval is how often the background worker pulls samples.
	RefreshInterval time.Duration
	// SampleBatchSize is the number of samples recorded per worker tick.
	SampleBatchSize int
}

// GroqConfig holds settings for the external completion service. An empty
// APIKey disables the client; recommendations then come from the rule table.
type GroqConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

type LogConfig struct {
	Level  string
	Pretty bool
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "syscall_optimizer"),
		},
		JWT: JWTConfig{
			AccessSecret:       getEnv("JWT_ACCESS_SECRET", "your-access-secret-key"),
			AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "15m"), 15*time.Minute),
			RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "168h"), 168*time.Hour),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Optimizer: OptimizerConfig{
			PerformanceThreshold: parseFloat(getEnv("PERFORMANCE_THRESHOLD", "0.05"), 0.05),
			RefreshInterval:      parseDuration(getEnv("REFRESH_INTERVAL", "5s"), 5*time.Second),
			SampleBatchSize:      parseInt(getEnv("SAMPLE_BATCH_SIZE", "20"), 20),
		},
		Groq: GroqConfig{
			APIKey:      getEnv("GROQ_API_KEY", ""),
			BaseURL:     getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:       getEnv("GROQ_MODEL", "llama3-8b-8192"),
			MaxTokens:   parseInt(getEnv("GROQ_MAX_TOKENS", "75"), 75),
			Temperature: parseFloat(getEnv("GROQ_TEMPERATURE", "0.7"), 0.7),
			Timeout:     parseDuration(getEnv("GROQ_TIMEOUT", "10s"), 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("LOG_PRETTY", "false") == "true",
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return duration
}

func parseFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseOrigins(s string) []string {
	if s == "" {
		return []string{}
	}

	origins := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			origins = append(origins, part)
		}
	}

	return origins
}
