package eventbus

import (
	"context"
	"encoding/json"
	"errors"
)

// Event는 Kafka 메시지의 페이로드로 사용되는 봉투(envelope)다.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
	// RequestID 는 이벤트를 만든 HTTP 요청의 X-Request-Id 이다.
	RequestID string `json:"request_id,omitempty"`
}

// EventHandler는 이벤트 처리 함수의 시그니처다.
// 에러를 반환해도 메시지는 커밋된다. (조회수처럼 유실 허용 이벤트 전용)
type EventHandler func(ctx context.Context, event Event) error

// Publisher 는 발행만 필요한 웹 서버 쪽에서 사용한다.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
}

// EventBus 인터페이스는 이벤트 발행 및 구독의 추상화다.
type EventBus interface {
	Publisher
	// Subscribe는 topic 을 구독해 ctx 가 끝날 때까지 handler 를 실행한다.
	Subscribe(ctx context.Context, groupID, topic string, handler EventHandler) error
	Close()
}

var ErrClosed = errors.New("eventbus: closed")
