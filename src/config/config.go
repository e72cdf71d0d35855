package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	StoreBackendMongo  = "mongo"
	StoreBackendMemory = "memory"
)

type Config struct {
	HTTPPort              string
	StoreBackend          string
	MongoConnectionString string
	MongoDatabaseName     string
	RabbitMQHostName      string
	RabbitMQExchange      string
	AuthUsername          string
	AuthPassword          string
}

func LoadConfig() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables only")
	}

	config := &Config{
		HTTPPort:              os.Getenv("HTTP_PORT"),
		StoreBackend:          os.Getenv("STORE_BACKEND"),
		MongoConnectionString: os.Getenv("MONGODB_CONNECTION_STRING"),
		MongoDatabaseName:     os.Getenv("MONGODB_DATABASE_NAME"),
		RabbitMQHostName:      os.Getenv("RABBITMQ_HOSTNAME"),
		RabbitMQExchange:      os.Getenv("RABBITMQ_EXCHANGE"),
		AuthUsername:          os.Getenv("AUTH_USERNAME"),
		AuthPassword:          os.Getenv("AUTH_PASSWORD"),
	}

	if config.HTTPPort == "" {
		config.HTTPPort = "3001"
	}
	if config.MongoDatabaseName == "" {
		config.MongoDatabaseName = "canteen-db"
	}
	if config.RabbitMQExchange == "" {
		config.RabbitMQExchange = "canteen_events"
	}
	if config.AuthUsername == "" {
		config.AuthUsername = "user"
	}
	if config.AuthPassword == "" {
		config.AuthPassword = "1234"
	}

	// Without an explicit backend, run against Mongo when a connection string
	// is present and fall back to the in-memory store otherwise.
	if config.StoreBackend == "" {
		if config.MongoConnectionString != "" {
			config.StoreBackend = StoreBackendMongo
		} else {
			config.StoreBackend = StoreBackendMemory
		}
	}
	switch config.StoreBackend {
	case StoreBackendMongo, StoreBackendMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (expected %q or %q)",
			config.StoreBackend, StoreBackendMongo, StoreBackendMemory)
	}
	if config.StoreBackend == StoreBackendMongo && config.MongoConnectionString == "" {
		return nil, fmt.Errorf("MONGODB_CONNECTION_STRING is required when STORE_BACKEND is %q", StoreBackendMongo)
	}

	return config, nil
}
