// Package notify implements C5, the notifier: it sends operator mail
// for restart outcomes, built on github.com/go-mail/mail/v2 exactly as
// the teacher's middlewares/mail.go does (mail.NewMessage, a single
// mail.Dialer, DialAndSend), but with a plain JSON body instead of an
// HTML execution-report template.
package notify

import (
	"fmt"
	"os"
	"strings"

	mail "github.com/go-mail/mail/v2"

	"github.com/netresearch/dockwatch/core"
)

// Config configures the SMTP dialer and message envelope.
type Config struct {
	SMTPServer string // host[:port]; port defaults to 25
	Recipients []string
	FromHost   string // used in the "<FromHost>: <subject>" prefix; falls back to os.Hostname
}

// Mailer sends subject/body pairs over SMTP. Satisfies policy.Mailer.
type Mailer struct {
	cfg  Config
	log  core.Logger
	host string // resolved once at construction, per from() in the teacher
}

// New returns a Mailer. If cfg.Recipients is empty, Send is a no-op
// that logs a warning, matching original_source/notificationservice.py's
// behavior when no recipients are configured.
func New(cfg Config, log core.Logger) *Mailer {
	if log == nil {
		log = &core.SimpleLogger{}
	}
	host := cfg.FromHost
	if host == "" {
		if h, err := os.Hostname(); err == nil {
			host = h
		} else {
			host = "localhost"
		}
	}
	return &Mailer{cfg: cfg, log: log, host: host}
}

// Send dials the configured SMTP server and delivers subject/body to
// every configured recipient. The subject is prefixed with "<host>: "
// per spec section 4.5; the body is sent verbatim as plain text (the
// raw event JSON, for policy-originated mail).
func (m *Mailer) Send(subject string, body []byte) error {
	if len(m.cfg.Recipients) == 0 {
		m.log.Warningf("skipping mail notification: no recipients configured")
		return nil
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", "dockwatch")
	msg.SetHeader("To", m.cfg.Recipients...)
	msg.SetHeader("Subject", fmt.Sprintf("%s: %s", m.host, subject))
	msg.SetBody("text/plain", string(body))

	host, port := splitSMTPAddr(m.cfg.SMTPServer)
	d := mail.NewDialer(host, port, "", "")

	m.log.Noticef("sending mail to %s: %s", strings.Join(m.cfg.Recipients, ", "), subject)
	if err := d.DialAndSend(msg); err != nil {
		return core.WrapNotifierError(err)
	}
	return nil
}

func splitSMTPAddr(addr string) (host string, port int) {
	port = 25
	host = addr
	if i := strings.LastIndex(addr, ":"); i != -1 {
		host = addr[:i]
		fmt.Sscanf(addr[i+1:], "%d", &port)
	}
	return host, port
}
