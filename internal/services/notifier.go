package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/mjal-at/file-service/internal/models"
)

// Notifier announces successful uploads. Delivery is best effort: the
// caller logs failures and never propagates them.
type Notifier interface {
	FileUploaded(ctx context.Context, rec models.FileRecord) error
}

// NoopNotifier is used when no notification endpoint is configured.
type NoopNotifier struct{}

func (NoopNotifier) FileUploaded(ctx context.Context, rec models.FileRecord) error {
	return nil
}

// NATSNotifier publishes upload events to a NATS subject.
type NATSNotifier struct {
	nc      *nats.Conn
	subject string
}

func ConnectNATS(url, subject string) (*NATSNotifier, error) {
	nc, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSNotifier{nc: nc, subject: subject}, nil
}

func (n *NATSNotifier) FileUploaded(ctx context.Context, rec models.FileRecord) error {
	if !n.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}

	event := map[string]any{
		"action":      "uploaded",
		"file_id":     rec.ID,
		"file_name":   rec.OriginalName,
		"file_type":   rec.MimeType,
		"size":        rec.Size,
		"user_id":     rec.UserID,
		"uploaded_at": rec.UploadDate.UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal upload event: %w", err)
	}
	return n.nc.Publish(n.subject, data)
}

// Close drains the connection.
func (n *NATSNotifier) Close() {
	if n.nc != nil && n.nc.IsConnected() {
		n.nc.Close()
	}
}
