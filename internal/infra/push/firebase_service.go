// Package push delivers ephemeral toast alerts to the device via Firebase
// Cloud Messaging. Delivery is best-effort: the stored notification is the
// durable copy, the toast is only the attention cue.
package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"pureflow/internal/domain/service"
)

type firebaseService struct {
	client      *messaging.Client
	deviceToken string
}

// NewFirebaseService creates a push service backed by FCM, targeting the
// device token from configuration.
func NewFirebaseService(ctx context.Context, credentialsPath, deviceToken string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client:      client,
		deviceToken: deviceToken,
	}, nil
}

// SendToast pushes a single notification to this device.
func (s *firebaseService) SendToast(ctx context.Context, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: s.deviceToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send toast: %w", err)
	}

	return nil
}
