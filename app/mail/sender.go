package mail

import (
	"fmt"
	"io"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// Sender delivers the daily report over SMTP. Delivery is fire and
// forget at the run level: the caller records the boolean outcome and
// moves on.
type Sender struct {
	host      string
	port      int
	user      string
	password  string
	recipient string
}

func NewSender(host string, port int, user, password, recipient string) *Sender {
	return &Sender{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		recipient: recipient,
	}
}

// Send mails the plain-text body with an optional PDF attachment named
// after the report date.
func (s *Sender) Send(dateStr, body string, attachment []byte) error {
	if s.user == "" || s.recipient == "" {
		return fmt.Errorf("mail sender misconfigured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", s.recipient)
	m.SetHeader("Subject", fmt.Sprintf("Daily Banking Digest - %s", dateStr))
	m.SetBody("text/plain", body)

	if len(attachment) > 0 {
		filename := fmt.Sprintf("report_%s.pdf", strings.ReplaceAll(dateStr, " ", "_"))
		m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	dialer := gomail.NewDialer(s.host, s.port, s.user, s.password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
