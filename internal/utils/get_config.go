package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	Env     string `yaml:"ENV"`
	AppPort string `yaml:"APP_PORT"`
	AppURL  string `yaml:"APP_URL"`

	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Midtrans configuration
	ClientKey string `yaml:"CLIENT_KEY"`
	ServerKey string `yaml:"SERVER_KEY"`
	IsProd    string `yaml:"IS_PROD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config Config

var defaults = map[string]string{
	"ENV":         "development",
	"APP_PORT":    "8080",
	"DB_PORT":     "5432",
	"DB_SSLMODE":  "disable",
	"DB_TIMEZONE": "UTC",
}

func (c *Config) fields() map[string]*string {
	return map[string]*string{
		"ENV":                &c.Env,
		"APP_PORT":           &c.AppPort,
		"APP_URL":            &c.AppURL,
		"CORS_ALLOW_ORIGINS": &c.CORSAllowOrigins,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"DB_SSLMODE":         &c.DBSSLMode,
		"DB_TIMEZONE":        &c.DBTimeZone,
		"JWT_SECRET":         &c.JWTSecret,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"CLIENT_KEY":         &c.ClientKey,
		"SERVER_KEY":         &c.ServerKey,
		"IS_PROD":            &c.IsProd,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
	}
}

// LoadConfig reads config.yaml, then lets .env and the process environment
// override individual keys. A missing file is not an error.
func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	_ = godotenv.Load()

	next := Config{}
	if file, err := os.ReadFile(path); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading YAML file: %s\n", err)
		}
	} else if err := yaml.Unmarshal(file, &next); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	for key, field := range next.fields() {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field = v
		}
		if *field == "" {
			*field = defaults[key]
		}
	}
	config = next
}

func GetConfig(key string) string {
	if field, ok := config.fields()[key]; ok {
		return *field
	}
	return ""
}

func IsProduction() bool {
	return GetConfig("ENV") == "production"
}
