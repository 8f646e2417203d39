// Package service defines the collaborator ports of the domain: outward-facing
// capabilities the usecases need but whose mechanics belong to infrastructure.
package service

import "context"

// PushService surfaces an ephemeral on-screen alert on the active device.
// Implementations are best-effort: a failed push is logged and dropped, the
// stored notification already exists and will be seen on the next visit to the
// notification list.
type PushService interface {
	SendToast(ctx context.Context, title, body string, data map[string]string) error
}
