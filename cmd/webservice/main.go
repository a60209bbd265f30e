package main

import (
	"context"

	"github.com/alimikegami/sales-dashboard/product-stats-service/config"
	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/app"
	"github.com/alimikegami/sales-dashboard/product-stats-service/internal/infrastructure/database/mongodb"
	kafkainfra "github.com/alimikegami/sales-dashboard/product-stats-service/internal/infrastructure/message-queue/kafka"
	"github.com/segmentio/kafka-go"
)

func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.DBURL, config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	var kafkaProducer *kafka.Conn
	if config.KafkaConfig.BrokerAddress != "" {
		kafkaProducer = kafkainfra.CreateKafkaProducer(config)
	}

	server := app.App{
		DB:            db,
		KafkaProducer: kafkaProducer,
		Config:        config,
	}

	server.Start()
}
