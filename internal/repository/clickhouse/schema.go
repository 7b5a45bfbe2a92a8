package clickhouse

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// InitSchema creates the stream-fed tables: one Kafka-engine raw table
// per event stream, a MergeTree storage table the metric queries read,
// and a materialized view piping raw into storage. kafkaBrokers is the
// broker list the Kafka engine consumes from.
func (r *Repository) InitSchema(ctx context.Context, kafkaBrokers string) error {
	statements := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS user_events (
			event_type String,
			user_id String,
			timestamp DateTime64(3)
		) ENGINE = Kafka()
		SETTINGS
			kafka_broker_list = '%s',
			kafka_topic_list = 'user_events',
			kafka_group_name = 'clickhouse_user_consumer',
			kafka_format = 'JSONEachRow',
			kafka_max_block_size = 1048576
		`, kafkaBrokers),

		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS transaction_events (
			event_type String,
			user_id String,
			transaction_id String,
			amount Decimal64(2),
			currency String,
			timestamp DateTime64(3)
		) ENGINE = Kafka()
		SETTINGS
			kafka_broker_list = '%s',
			kafka_topic_list = 'transaction_events',
			kafka_group_name = 'clickhouse_transaction_consumer',
			kafka_format = 'JSONEachRow',
			kafka_max_block_size = 1048576
		`, kafkaBrokers),

		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS interaction_events (
			event_type String,
			user_id String,
			element_name Nullable(String),
			page Nullable(String),
			query Nullable(String),
			form_name Nullable(String),
			item_id Nullable(String),
			filter_name Nullable(String),
			filter_value Nullable(String),
			timestamp DateTime64(3)
		) ENGINE = Kafka()
		SETTINGS
			kafka_broker_list = '%s',
			kafka_topic_list = 'interaction_events',
			kafka_group_name = 'clickhouse_interaction_consumer',
			kafka_format = 'JSONEachRow',
			kafka_max_block_size = 1048576
		`, kafkaBrokers),

		`
		CREATE TABLE IF NOT EXISTS user_events_storage (
			event_type String,
			user_id String,
			timestamp DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (timestamp, user_id)
		`,

		`
		CREATE TABLE IF NOT EXISTS transaction_events_storage (
			event_type String,
			user_id String,
			transaction_id String,
			amount Decimal64(2),
			currency String,
			timestamp DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (timestamp, user_id)
		`,

		`
		CREATE TABLE IF NOT EXISTS interaction_events_storage (
			event_type String,
			user_id String,
			element_name Nullable(String),
			page Nullable(String),
			query Nullable(String),
			form_name Nullable(String),
			item_id Nullable(String),
			filter_name Nullable(String),
			filter_value Nullable(String),
			timestamp DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (timestamp, user_id, event_type)
		`,

		`
		CREATE MATERIALIZED VIEW IF NOT EXISTS user_events_consumer TO user_events_storage AS
		SELECT event_type, user_id, timestamp FROM user_events
		`,

		`
		CREATE MATERIALIZED VIEW IF NOT EXISTS transaction_events_consumer TO transaction_events_storage AS
		SELECT event_type, user_id, transaction_id, amount, currency, timestamp FROM transaction_events
		`,

		`
		CREATE MATERIALIZED VIEW IF NOT EXISTS interaction_events_consumer TO interaction_events_storage AS
		SELECT event_type, user_id, element_name, page, query, form_name, item_id, filter_name, filter_value, timestamp FROM interaction_events
		`,
	}

	for _, statement := range statements {
		if err := r.client.Conn().Exec(ctx, statement); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	r.log.Info("ClickHouse schema initialized successfully", zap.Int("statements", len(statements)))
	return nil
}
