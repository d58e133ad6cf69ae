// Package messagequeue provides a publish-only message queue abstraction.
// The portal can hand notification payloads to a RabbitMQ queue for an
// external mail relay instead of talking SMTP itself.
package messagequeue

// MessageQueue defines the interface for message queue services.
type MessageQueue interface {
	Publish(queueName string, body []byte) error
	Close() error
}
