package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServiceEnvironment           string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	ServiceAPIPort               string `envconfig:"SERVICE_API_PORT" default:"8080"`
	ServiceHost                  string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
	KafkaBootstrapServers        string `envconfig:"KAFKA_BOOTSTRAP_SERVERS" default:"localhost:9092"`
	KafkaTopicPartitions         int32  `envconfig:"KAFKA_TOPIC_PARTITIONS" default:"3"`
	KafkaReplicationFactor       int16  `envconfig:"KAFKA_REPLICATION_FACTOR" default:"1"`
	ClickHouseHost               string `envconfig:"CLICKHOUSE_HOST" default:"localhost"`
	ClickHousePort               string `envconfig:"CLICKHOUSE_PORT" default:"9000"`
	ClickHouseDB                 string `envconfig:"CLICKHOUSE_DATABASE" default:"analytics"`
	ClickHouseUser               string `envconfig:"CLICKHOUSE_USER" default:"default"`
	ClickHousePassword           string `envconfig:"CLICKHOUSE_PASSWORD" default:""`
	ClickHouseUseTLS             bool   `envconfig:"CLICKHOUSE_USE_TLS" default:"false"`
	ClickHouseMaxOpenConns       int    `envconfig:"CLICKHOUSE_MAX_OPEN_CONNS" default:"5"`
	ClickHouseMaxIdleConns       int    `envconfig:"CLICKHOUSE_MAX_IDLE_CONNS" default:"2"`
	ClickHouseConnMaxLifetimeSec int    `envconfig:"CLICKHOUSE_CONN_MAX_LIFETIME_SEC" default:"3600"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// KafkaBrokers splits the bootstrap server list into broker addresses.
func (c *Config) KafkaBrokers() []string {
	return strings.Split(c.KafkaBootstrapServers, ",")
}
