package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBDriver  string // postgres, mysql or sqlite
	DBName    string
	JWTKey    string
	SaltRound int

	EmailSender    string
	EmailPassword  string // SMTP app password
	SendGridAPIKey string // preferred over SMTP when set

	CurrencyAPIURL string
	UploadDir      string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBDriver:  getEnv("DB_DRIVER", "postgres"),
		DBName:    getEnv("DB_NAME", "learnhub"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender:    getEnv("EMAIL_SENDER", ""),
		EmailPassword:  getEnv("EMAIL_PASSWORD", ""),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		CurrencyAPIURL: getEnv("CURRENCY_API_URL", "https://open.er-api.com/v6/latest/USD"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
