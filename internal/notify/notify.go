// Package notify delivers run reports after a reconciliation completes.
// Delivery is fire-and-forget: failures are logged and never surfaced to
// the run that produced the report.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"sync"
)

// Notifier delivers a rendered report to a recipient.
type Notifier interface {
	Deliver(ctx context.Context, recipient, subject, bodyHTML string) error
}

// SMTPConfig holds mail transport settings.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587
	Username string
	Password string
	From     string // defaults to Username when empty
}

// SMTPNotifier sends HTML mail over authenticated SMTP.
type SMTPNotifier struct {
	cfg SMTPConfig
	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotifier creates a Notifier that mails reports via the configured
// SMTP relay.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail}
}

func (n *SMTPNotifier) Deliver(ctx context.Context, recipient, subject, bodyHTML string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	from := n.cfg.From
	if from == "" {
		from = n.cfg.Username
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: \"Wakatime-Jira Integration\" <%s>\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(bodyHTML)

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	if err := n.send(addr, auth, from, []string{recipient}, []byte(msg.String())); err != nil {
		return fmt.Errorf("sending mail via %s: %w", addr, err)
	}
	return nil
}

// LogNotifier writes reports to the logger instead of delivering them.
// Used when no SMTP relay is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier that only logs.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Deliver(_ context.Context, recipient, subject, _ string) error {
	n.logger.Info("notification suppressed (no mail transport configured)",
		"recipient", recipient, "subject", subject)
	return nil
}

// Dispatcher runs deliveries in the background. Errors are logged, not
// returned; Wait exists so tests and shutdown paths can drain in-flight
// deliveries.
type Dispatcher struct {
	notifier Notifier
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewDispatcher wraps a Notifier with detached delivery.
func NewDispatcher(notifier Notifier, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{notifier: notifier, logger: logger}
}

// Dispatch schedules one delivery and returns immediately.
func (d *Dispatcher) Dispatch(recipient, subject, bodyHTML string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.notifier.Deliver(context.Background(), recipient, subject, bodyHTML); err != nil {
			d.logger.Error("notification delivery failed",
				"recipient", recipient, "subject", subject, "error", err)
		}
	}()
}

// Wait blocks until all dispatched deliveries have finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
