package mail

import (
	"context"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"

	"github.com/mchexpo/fairhall-contracts/internal/config"
)

// Message is one outbound email.
type Message struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Sender hands a message to a delivery mechanism.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender delivers via an SMTP relay.
type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return err
	}
	if err := msg.To(m.To...); err != nil {
		return err
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, m.Body)
	if m.HTMLBody != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, m.HTMLBody)
	}

	opts := []gomail.Option{gomail.WithPort(s.cfg.Port)}
	if s.cfg.UseTLS {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// SimulationSender logs the delivery instead of performing it. Used for
// local development and tests.
type SimulationSender struct {
	log zerolog.Logger
}

func NewSimulationSender(log zerolog.Logger) *SimulationSender {
	return &SimulationSender{log: log}
}

func (s *SimulationSender) Send(_ context.Context, m Message) error {
	s.log.Info().Strs("to", m.To).Str("subject", m.Subject).Msg("simulated email delivery")
	return nil
}
