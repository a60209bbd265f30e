package kafka

import (
	"context"

	"github.com/alimikegami/sales-dashboard/product-stats-service/config"
	"github.com/segmentio/kafka-go"
)

var KafkaConn *kafka.Conn

// CreateKafkaProducer dials the partition leader for the configured topic.
// This service only publishes ingestion events, so no reader is set up.
func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	KafkaConn = conn
	return KafkaConn
}
