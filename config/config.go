package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	MongoDBConfig  MongoDBConfig
	UpstreamConfig UpstreamConfig
	KafkaConfig    KafkaConfig
	TracingConfig  TracingConfig
}

type MongoDBConfig struct {
	DBURL  string
	DBName string
}

type UpstreamConfig struct {
	ProductDataURL string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

const defaultProductDataURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		MongoDBConfig: MongoDBConfig{
			DBURL:  os.Getenv("MONGODB_URL"),
			DBName: os.Getenv("DB_NAME"),
		},
		UpstreamConfig: UpstreamConfig{
			ProductDataURL: os.Getenv("PRODUCT_DATA_URL"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.UpstreamConfig.ProductDataURL == "" {
		conf.UpstreamConfig.ProductDataURL = defaultProductDataURL
	}

	brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION"))
	if err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	return &conf
}
