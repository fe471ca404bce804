// Package notify delivers maintenance reminders for items that are due soon
// or overdue.
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/ukydev/car-maintenance/internal/models"
)

// Publisher hands schedule entries that need attention to an external channel.
type Publisher interface {
	Publish(ctx context.Context, vehicleID string, entries []models.ScheduleSummaryEntry) error
}

// NopPublisher drops every reminder.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, string, []models.ScheduleSummaryEntry) error {
	return nil
}

// Reminder is the message body sent for one vehicle.
type Reminder struct {
	VehicleID string                        `json:"vehicle_id"`
	SentAt    time.Time                     `json:"sent_at"`
	Entries   []models.ScheduleSummaryEntry `json:"entries"`
}

// publishClient is the part of mqtt.Client used here.
type publishClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTPublisher publishes reminders as JSON to <prefix>/vehicles/<id>/reminders.
type MQTTPublisher struct {
	client  publishClient
	prefix  string
	timeout time.Duration
}

// NewMQTTPublisher wraps an already connected client.
func NewMQTTPublisher(client mqtt.Client, prefix string) *MQTTPublisher {
	return newMQTTPublisher(client, prefix)
}

func newMQTTPublisher(client publishClient, prefix string) *MQTTPublisher {
	if prefix == "" {
		prefix = "car-maintenance"
	}
	return &MQTTPublisher{client: client, prefix: prefix, timeout: 5 * time.Second}
}

// ConnectMQTT dials broker and returns a connected client.
func ConnectMQTT(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	return client, nil
}

// Topic returns the reminder topic for a vehicle.
func (p *MQTTPublisher) Topic(vehicleID string) string {
	return fmt.Sprintf("%s/vehicles/%s/reminders", p.prefix, vehicleID)
}

// Publish sends entries with QoS 1. An empty entry list is not published.
func (p *MQTTPublisher) Publish(ctx context.Context, vehicleID string, entries []models.ScheduleSummaryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	payload, err := json.Marshal(Reminder{VehicleID: vehicleID, SentAt: time.Now(), Entries: entries})
	if err != nil {
		return fmt.Errorf("encode reminder: %w", err)
	}

	token := p.client.Publish(p.Topic(vehicleID), 1, false, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.timeout):
		return errors.New("mqtt publish timed out")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish: %w", err)
	}
	return nil
}
