// Package notify formats operator notifications for submitted projects and
// delivers them off the request path. Delivery failures are logged, never
// surfaced to the submitting request, and never roll back the stored record.
package notify

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"webintake-backend-go/internal/models"
	"webintake-backend-go/pkg/mailer"
	"webintake-backend-go/pkg/messagequeue"
)

// Transport delivers one formatted notification.
type Transport interface {
	Send(subject, body string) error
}

// SMTPTransport delivers notifications as email to the operator address.
type SMTPTransport struct {
	Mailer *mailer.SMTPMailer
	From   string
	To     string
}

func (t *SMTPTransport) Send(subject, body string) error {
	return t.Mailer.Send(t.To, t.From, subject, body)
}

// QueueTransport hands notifications to a message queue for an external relay.
type QueueTransport struct {
	Queue     messagequeue.MessageQueue
	QueueName string
}

func (t *QueueTransport) Send(subject, body string) error {
	return t.Queue.Publish(t.QueueName, []byte(subject+"\n\n"+body))
}

type job struct {
	subject string
	body    string
}

// Dispatcher implements core.Notifier. Notifications are queued on a buffered
// channel and sent by a single worker goroutine so request latency is never
// coupled to mail-server latency. When the buffer is full the notification is
// dropped with a warning rather than blocking the request.
type Dispatcher struct {
	transport Transport
	logger    *zap.Logger

	jobs chan job
	wg   sync.WaitGroup
	once sync.Once
}

// NewDispatcher starts the delivery worker. A nil transport disables delivery;
// submissions are then only logged.
func NewDispatcher(transport Transport, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		transport: transport,
		logger:    logger,
		jobs:      make(chan job, 64),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for j := range d.jobs {
		if d.transport == nil {
			d.logger.Info("Notification transport not configured, skipping delivery",
				zap.String("subject", j.subject))
			continue
		}
		if err := d.transport.Send(j.subject, j.body); err != nil {
			d.logger.Warn("Notification delivery failed", zap.String("subject", j.subject), zap.Error(err))
			continue
		}
		d.logger.Info("Notification delivered", zap.String("subject", j.subject))
	}
}

// ProjectSubmitted queues an operator notification for a new submission.
func (d *Dispatcher) ProjectSubmitted(project *models.Project) {
	subject, body := FormatSummary(project)
	select {
	case d.jobs <- job{subject: subject, body: body}:
	default:
		d.logger.Warn("Notification queue full, dropping notification",
			zap.String("projectId", project.ID))
	}
}

// Close drains pending notifications and stops the worker.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.jobs) })
	d.wg.Wait()
}

// FormatSummary renders the plaintext operator summary for a submission.
func FormatSummary(p *models.Project) (subject, body string) {
	subject = fmt.Sprintf("New Project Submitted - %s", p.WebsiteName)
	body = fmt.Sprintf(`New Project Submission Details:

Project ID: %s
Client Name: %s
Username: %s
Email: %s
Phone: %s

Website Name: %s
Website Type: %s
Complexity: %s
Total Cost: ₹%d
Advance Amount: ₹%d

Requirements:
%s

Delivery Date: %s

Please check the admin dashboard for more details.
`,
		p.ID, p.UserName, p.Username, p.UserEmail, p.UserPhone,
		p.WebsiteName, p.WebsiteType, p.Complexity, p.TotalCost, p.AdvanceAmount,
		p.Description, p.DeliveryDate)
	return subject, body
}
