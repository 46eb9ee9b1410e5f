package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewed struct {
	ArticleID string `json:"article_id"`
}

func TestNewJSONEventRoundTrip(t *testing.T) {
	evt, err := NewJSONEvent("", viewed{ArticleID: "a1"})
	require.NoError(t, err)
	assert.NotEmpty(t, evt.ID)

	got, err := DecodeJSON[viewed](evt)
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ArticleID)
}

func TestNewJSONEventKeepsID(t *testing.T) {
	evt, err := NewJSONEvent("fixed", viewed{})
	require.NoError(t, err)
	assert.Equal(t, "fixed", evt.ID)
}

func TestNewJSONEventRejectsUnmarshalable(t *testing.T) {
	_, err := NewJSONEvent("", make(chan int))
	assert.Error(t, err)
}

func TestHandleMessageSwallowsFailures(t *testing.T) {
	calls := 0
	handler := func(ctx context.Context, evt Event) error {
		calls++
		return errors.New("cms down")
	}

	handleMessage(context.Background(), []byte("{not json"), handler)
	assert.Equal(t, 0, calls)

	raw, err := json.Marshal(Event{ID: "e1", Payload: json.RawMessage(`{"article_id":"a1"}`)})
	require.NoError(t, err)
	assert.NotPanics(t, func() { handleMessage(context.Background(), raw, handler) })
	assert.Equal(t, 1, calls)
}
