package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"promopush/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// PushMessage is the envelope Pub/Sub uses when pushing to an HTTP endpoint.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

var eventValidator = validator.New(validator.WithRequiredStructEnabled())

// DecodeTokenInvalidation unpacks and validates the event carried by a push envelope.
func DecodeTokenInvalidation(msg *PushMessage) (*service.TokenInvalidationEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.TokenInvalidationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal token invalidation event")
	}

	if err := eventValidator.Struct(&event); err != nil {
		return nil, errors.Wrap(err, "invalid token invalidation event")
	}

	return &event, nil
}

func eventAttributes(event *service.TokenInvalidationEvent) map[string]string {
	attributes := map[string]string{
		"event_id":  event.EventID,
		"recipient": event.Recipient,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
