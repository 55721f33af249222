package notification

import (
	"promopush/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
)

const androidPriorityHigh = "high"

// payloadData is the data block carried by every message so service workers
// can render the notification themselves.
func payloadData(payload service.PushPayload) map[string]string {
	data := map[string]string{
		"title": payload.Title,
		"body":  payload.Body,
		"url":   payload.URL,
		"icon":  payload.Icon,
	}
	if payload.ImageURL != "" {
		data["image"] = payload.ImageURL
	}

	return data
}

// webpushConfig carries only the click link. Web clients render the
// notification from the data block.
func webpushConfig(payload service.PushPayload) *messaging.WebpushConfig {
	if payload.URL == "" {
		return nil
	}

	return &messaging.WebpushConfig{
		FCMOptions: &messaging.WebpushFCMOptions{Link: payload.URL},
	}
}

func apnsConfig(payload service.PushPayload) *messaging.APNSConfig {
	cfg := &messaging.APNSConfig{
		Payload: &messaging.APNSPayload{
			Aps: &messaging.Aps{
				ContentAvailable: true,
				Alert: &messaging.ApsAlert{
					Title: payload.Title,
					Body:  payload.Body,
				},
			},
		},
	}
	if payload.ImageURL != "" {
		cfg.FCMOptions = &messaging.APNSFCMOptions{ImageURL: payload.ImageURL}
	}

	return cfg
}

func androidConfig(payload service.PushPayload) *messaging.AndroidConfig {
	return &messaging.AndroidConfig{
		Priority: androidPriorityHigh,
		Notification: &messaging.AndroidNotification{
			Title:    payload.Title,
			Body:     payload.Body,
			ImageURL: payload.ImageURL,
		},
	}
}

func buildMulticastMessage(tokens []string, payload service.PushPayload) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens:  tokens,
		Data:    payloadData(payload),
		Webpush: webpushConfig(payload),
		Android: androidConfig(payload),
		APNS:    apnsConfig(payload),
	}
}

func buildMessage(token string, payload service.PushPayload) *messaging.Message {
	return &messaging.Message{
		Token:   token,
		Data:    payloadData(payload),
		Webpush: webpushConfig(payload),
		Android: androidConfig(payload),
		APNS:    apnsConfig(payload),
	}
}
