package config

import (
	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App            App
		BookingBackend BookingBackend
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		RequestTimeoutInSeconds   int
		RateLimitBlockTimeMinutes int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	BookingBackend struct {
		BaseUrl          string
		TimeoutInSeconds int
	}
)
