package messaging

import (
	"testing"

	domainerrors "lineconnect/internal/domain/errors"
	"lineconnect/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadParser_Parse(t *testing.T) {
	parser, err := NewPayloadParser()
	require.NoError(t, err)

	body := []byte(`{
		"destination": "Ubot",
		"events": [
			{
				"type": "message",
				"mode": "active",
				"timestamp": 1700000000000,
				"webhookEventId": "01HXYZ",
				"deliveryContext": {"isRedelivery": true},
				"source": {"type": "user", "userId": "U123"},
				"replyToken": "rt-1",
				"message": {"id": "m1", "type": "text", "text": "hello"}
			},
			{"type": "somethingNew", "webhookEventId": "01HABC"}
		]
	}`)

	payload, err := parser.Parse(body)
	require.NoError(t, err)
	require.Len(t, payload.Events, 2)

	ev := payload.Events[0]
	assert.Equal(t, "Ubot", payload.Destination)
	assert.Equal(t, "U123", ev.SourceUserID())
	assert.Equal(t, "text", ev.MessageType())
	assert.Equal(t, "hello", ev.Message.Text)
	assert.True(t, ev.IsRedelivery())
	assert.Equal(t, "somethingNew", payload.Events[1].Type)
}

func TestPayloadParser_Rejects(t *testing.T) {
	parser, err := NewPayloadParser()
	require.NoError(t, err)

	cases := map[string]string{
		"not json":             `{"events":`,
		"missing events":       `{"destination":"U"}`,
		"event without type":   `{"events":[{"timestamp":1}]}`,
		"message without type": `{"events":[{"type":"message","message":{"id":"1"}}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parser.Parse([]byte(body))
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}
