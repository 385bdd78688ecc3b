// Package notify delivers booking confirmation email.  Delivery is always
// best-effort: callers run it off the request path and log failures
// instead of propagating them, so a broken mail setup never affects an
// already-persisted booking.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Notice carries the booking fields that appear in the confirmation
// message.  Dates and times are preformatted strings so the mailer does
// no interpretation of its own.
type Notice struct {
	BookingID int64
	ReceiptNo string
	Name      string
	Email     string
	Phone     string
	EventType string
	FromDate  string
	ToDate    string
	StartTime string
	EndTime   string
	Status    string
}

// Mailer sends plain-text mail over SMTP.  An empty Host disables the
// mailer; Send then reports a descriptive error that callers log.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Operator string // informational copies go here
}

// NewMailer builds a Mailer from config values.
func NewMailer(host, port, username, password, from, operator string) *Mailer {
	return &Mailer{Host: host, Port: port, Username: username,
		Password: password, From: from, Operator: operator}
}

// Enabled reports whether the mailer has enough configuration to attempt
// delivery at all.
func (m *Mailer) Enabled() bool { return m.Host != "" && m.From != "" }

// SendBookingConfirmation mails the submitter that their request was
// received, then sends an informational copy to the operator address when
// one is configured.  The first error encountered is returned for
// logging; a failed customer mail does not suppress the operator copy.
func (m *Mailer) SendBookingConfirmation(n Notice) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer disabled: SMTP_HOST or SMTP_FROM not set")
	}
	var firstErr error
	subject := "Booking Received - Sri Vari Mahal"
	if err := m.send([]string{n.Email}, subject, customerBody(n)); err != nil {
		firstErr = fmt.Errorf("customer mail to %s: %w", n.Email, err)
	}
	if m.Operator != "" {
		subject := fmt.Sprintf("New Booking %s", n.ReceiptNo)
		if err := m.send([]string{m.Operator}, subject, operatorBody(n)); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("operator mail to %s: %w", m.Operator, err)
		}
	}
	return firstErr
}

func (m *Mailer) send(to []string, subject, body string) error {
	var msg strings.Builder
	msg.WriteString("From: " + m.From + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body)

	addr := m.Host + ":" + m.Port
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	return smtp.SendMail(addr, auth, m.From, to, []byte(msg.String()))
}

func customerBody(n Notice) string {
	dates := n.FromDate
	if n.ToDate != "" && n.ToDate != n.FromDate {
		dates += " to " + n.ToDate
	}
	times := "full day"
	if n.StartTime != "" && n.EndTime != "" {
		times = n.StartTime + " to " + n.EndTime
	}
	return fmt.Sprintf(`Dear %s,

Your booking request has been successfully received.

Receipt: %s
Event:   %s
Date:    %s
Time:    %s
Status:  %s

We are excited to host your event at Sri Vari Mahal.
Our team will reach out soon for further coordination.

Warm Regards,
Sri Vari Mahal A/C
+91 98431 86231 | +91 88702 01981
`, n.Name, n.ReceiptNo, n.EventType, dates, times, n.Status)
}

func operatorBody(n Notice) string {
	return fmt.Sprintf(`New booking received.

Receipt:    %s
Name:       %s
Phone:      %s
Email:      %s
Event:      %s
From date:  %s
To date:    %s
Start time: %s
End time:   %s
Status:     %s
`, n.ReceiptNo, n.Name, n.Phone, n.Email, n.EventType,
		n.FromDate, n.ToDate, n.StartTime, n.EndTime, n.Status)
}
