package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	err := b.MongoDB.Disconnect(ctx)
	if err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	err = b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if b.RabbitMQ != nil {
		err = b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	b.Logger.Sync()
	return nil
}
