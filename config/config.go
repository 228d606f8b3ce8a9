package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Generator GeneratorConfig
	Log       LogConfig
	S3        S3Config
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// GeneratorConfig holds the target row counts and output settings for a
// generation run. Seed of 0 means a time-based seed is chosen at run time.
type GeneratorConfig struct {
	Customers  int
	Products   int
	Stores     int
	Employees  int
	Orders     int
	Seed       int64
	OutputDir  string
	ExportXLSX bool
	Schedule   string // cron expression; empty disables scheduled runs
}

type LogConfig struct {
	Level  string
	Format string
}

type S3Config struct {
	Region          string
	Bucket          string // empty disables uploads
	AccessKeyID     string
	SecretAccessKey string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "1234"),
			DBName:   getEnv("DB_NAME", "pakretail"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Generator: GeneratorConfig{
			Customers:  getEnvInt("GEN_CUSTOMERS", 1000),
			Products:   getEnvInt("GEN_PRODUCTS", 500),
			Stores:     getEnvInt("GEN_STORES", 50),
			Employees:  getEnvInt("GEN_EMPLOYEES", 200),
			Orders:     getEnvInt("GEN_ORDERS", 5000),
			Seed:       getEnvInt64("GEN_SEED", 0),
			OutputDir:  getEnv("GEN_OUTPUT_DIR", "./pakistan_sales_data"),
			ExportXLSX: getEnvBool("GEN_EXPORT_XLSX", false),
			Schedule:   getEnv("GEN_SCHEDULE", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "me-south-1"),
			Bucket:          getEnv("AWS_S3_BUCKET", ""),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
	}

	if err := config.Generator.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects non-positive counts before any generation work starts.
func (g *GeneratorConfig) Validate() error {
	counts := map[string]int{
		"GEN_CUSTOMERS": g.Customers,
		"GEN_PRODUCTS":  g.Products,
		"GEN_STORES":    g.Stores,
		"GEN_EMPLOYEES": g.Employees,
		"GEN_ORDERS":    g.Orders,
	}
	for _, name := range []string{"GEN_CUSTOMERS", "GEN_PRODUCTS", "GEN_STORES", "GEN_EMPLOYEES", "GEN_ORDERS"} {
		if counts[name] <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %d", name, counts[name])
		}
	}
	if strings.TrimSpace(g.OutputDir) == "" {
		return fmt.Errorf("GEN_OUTPUT_DIR must not be empty")
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
