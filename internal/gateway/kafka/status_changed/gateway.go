package status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	retrierconfig "github.com/shauritanga/rtexpress-sub000/pkg/retrier"
	"github.com/shauritanga/rtexpress-sub000/pkg/retrier/backoff_adapter"
)

const (
	brokerName = "kafka-status-changed"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Gateway struct {
	producer producer
	retrier  retrier
	topic    string
}

func New(producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableKafkaError,
	}

	return &Gateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (g *Gateway) StatusChanged(ctx context.Context, event entities.StatusChangedEvent) error {
	payload, err := json.Marshal(fromDomain(event))
	if err != nil {
		return fmt.Errorf("gateway status changed, marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%s:%d", event.EntityType, event.EntityID)),
		Value: sarama.ByteEncoder(payload),
	}

	err = g.executeWithMetrics(ctx, "StatusChanged", func(_ context.Context) error {
		_, _, sendErr := g.producer.SendMessage(msg)
		return sendErr
	})
	if err != nil {
		return fmt.Errorf("gateway status changed, send message: %s:%d: %w", event.EntityType, event.EntityID, err)
	}

	return nil
}

func isRetryableKafkaError(err error) bool {
	if err == nil {
		return false
	}

	var kerr sarama.KError
	if !errors.As(err, &kerr) {
		// Сетевые сбои sarama отдает обычными ошибками - их тоже ретраим
		return true
	}

	switch kerr {
	case sarama.ErrLeaderNotAvailable,
		sarama.ErrNotLeaderForPartition,
		sarama.ErrRequestTimedOut,
		sarama.ErrNotEnoughReplicas,
		sarama.ErrNotEnoughReplicasAfterAppend:
		return true
	default:
		return false
	}
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	kafkaCode := getKafkaCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(brokerName, method, kafkaCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(brokerName, method, kafkaCode).Inc()
	}

	return err
}

func getKafkaCode(err error) string {
	if err == nil {
		return "OK"
	}

	var kerr sarama.KError
	if errors.As(err, &kerr) {
		return "KERR_" + strconv.Itoa(int(kerr))
	}

	return "UNKNOWN"
}
