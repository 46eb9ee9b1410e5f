package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"bangla-news/internal/logger"
)

// KafkaEventBus는 confluent-kafka-go 를 사용한 EventBus 구현체다.
type KafkaEventBus struct {
	Producer *kafka.Producer
	Brokers  string

	mu     sync.RWMutex
	closed bool
}

var _ EventBus = (*KafkaEventBus)(nil)

// NewKafkaEventBus는 Kafka Producer를 초기화한다.
func NewKafkaEventBus(brokers string) (*KafkaEventBus, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": brokers,
		"acks":              "1",
		"linger.ms":         20,
	})
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	// 전달 보고서 처리 고루틴
	go func() {
		for e := range p.Events() {
			switch ev := e.(type) {
			case *kafka.Message:
				if ev.TopicPartition.Error != nil {
					logger.Log.Errorf("kafka delivery failed %v: %v", ev.TopicPartition, ev.TopicPartition.Error)
				}
			case kafka.Error:
				logger.Log.Errorf("kafka error: %v", ev)
			}
		}
	}()

	return &KafkaEventBus{Producer: p, Brokers: brokers}, nil
}

// Close는 남은 메시지를 5초 동안 플러시한 뒤 Producer를 종료한다.
func (k *KafkaEventBus) Close() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed || k.Producer == nil {
		return
	}
	k.closed = true
	if remaining := k.Producer.Flush(5000); remaining > 0 {
		logger.Log.Warnf("%d kafka messages left after flush", remaining)
	}
	k.Producer.Close()
	logger.Log.Info("kafka producer closed")
}

// Publish는 이벤트를 발행하고 전달 보고서를 기다린다.
func (k *KafkaEventBus) Publish(ctx context.Context, topic string, event Event) error {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.closed {
		return ErrClosed
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = k.Producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Value:          data,
		Key:            []byte(event.ID),
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}

	select {
	case ev := <-deliveryChan:
		m, ok := ev.(*kafka.Message)
		if ok && m.TopicPartition.Error != nil {
			return fmt.Errorf("deliver to %s: %w", topic, m.TopicPartition.Error)
		}
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// Subscribe는 수동 커밋 컨슈머로 topic 을 읽는다.
// 핸들러 실패는 로그만 남기고 커밋한다. 재시도/DLQ 는 없다.
func (k *KafkaEventBus) Subscribe(ctx context.Context, groupID, topic string, handler EventHandler) error {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers":             k.Brokers,
		"group.id":                      groupID,
		"auto.offset.reset":             "latest",
		"enable.auto.commit":            false,
		"partition.assignment.strategy": "range",
	})
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}
	defer c.Close()

	if err := c.SubscribeTopics([]string{topic}, nil); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}
	logger.InfoWithFields("consumer started", logger.Fields{"group_id": groupID, "topic": topic})

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("consumer stopping")
			return ctx.Err()
		default:
		}

		msg, err := c.ReadMessage(100 * time.Millisecond)
		if err != nil {
			var kerr kafka.Error
			if errors.As(err, &kerr) {
				if kerr.Code() == kafka.ErrTimedOut {
					continue
				}
				if kerr.IsFatal() {
					return fmt.Errorf("consumer fatal error: %w", err)
				}
			}
			logger.Log.Errorf("consumer ReadMessage error: %v", err)
			continue
		}

		handleMessage(ctx, msg.Value, handler)

		if _, err := c.CommitMessage(msg); err != nil {
			logger.Log.Errorf("offset commit error: %v", err)
		}
	}
}

// handleMessage 는 레코드 하나를 디코딩해 handler 를 실행한다. 실패는 로그만 남긴다.
func handleMessage(ctx context.Context, value []byte, handler EventHandler) {
	var evt Event
	if err := json.Unmarshal(value, &evt); err != nil {
		logger.ErrorWithFields("dropping malformed event", logger.Fields{"error": err.Error()})
		return
	}
	if err := handler(ctx, evt); err != nil {
		logger.ErrorWithFields("event handler failed, dropping", logger.Fields{
			"event_id":   evt.ID,
			"request_id": evt.RequestID,
			"error":      err.Error(),
		})
	}
}
