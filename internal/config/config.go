package config

import (
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sstarkov/styleshop/internal/models"
)

type Config struct {
	DB_HOST         string
	DB_PORT         string
	DB_USER         string
	DB_PASSWORD     string
	DB_NAME         string
	DB_PATH         string
	ES_URL          string
	ES_USER         string
	ES_PASSWORD     string
	JWT_SECRET      string
	KAFKA_ADDRESS   string
	FRONTEND_ORIGIN string
	HTTP_ADDR       string
	LOG_LEVEL       string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		DB_HOST:         os.Getenv("DB_HOST"),
		DB_PORT:         os.Getenv("DB_PORT"),
		DB_USER:         os.Getenv("DB_USER"),
		DB_PASSWORD:     os.Getenv("DB_PASSWORD"),
		DB_NAME:         os.Getenv("DB_NAME"),
		DB_PATH:         os.Getenv("DB_PATH"),
		ES_URL:          os.Getenv("ES_URL"),
		ES_USER:         os.Getenv("ES_USER"),
		ES_PASSWORD:     os.Getenv("ES_PASSWORD"),
		JWT_SECRET:      os.Getenv("JWT_SECRET"),
		KAFKA_ADDRESS:   os.Getenv("KAFKA_ADDRESS"),
		FRONTEND_ORIGIN: os.Getenv("FRONTEND_ORIGIN"),
		HTTP_ADDR:       os.Getenv("HTTP_ADDR"),
		LOG_LEVEL:       os.Getenv("LOG_LEVEL"),
	}

	if config.JWT_SECRET == "" {
		config.JWT_SECRET = "jwt-secret-key"
	}
	if config.FRONTEND_ORIGIN == "" {
		config.FRONTEND_ORIGIN = "http://localhost:5173"
	}
	if config.HTTP_ADDR == "" {
		config.HTTP_ADDR = ":8080"
	}

	return config, nil
}

// InitDB opens postgres when DB_HOST is set, otherwise a local sqlite file,
// and migrates the schema.
func InitDB(configuration *Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if configuration.DB_HOST != "" {
		dsn := fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			configuration.DB_USER,
			configuration.DB_PASSWORD,
			configuration.DB_HOST,
			configuration.DB_PORT,
			configuration.DB_NAME,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		path := configuration.DB_PATH
		if path == "" {
			path = "styleshop.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
