// Package smtpmail sends outbound mail over authenticated SMTP.
package smtpmail

import (
	"context"

	"github.com/wneessen/go-mail"

	"github.com/plotbay/plotbay-backend/internal/domain/valueobject/mails"
	"github.com/plotbay/plotbay-backend/pkg/errorx"
)

const (
	DefaultHost = "smtp.gmail.com"
	DefaultPort = 587
)

type Client struct {
	client *mail.Client
	from   string
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewClient(cfg Config) (*Client, error) {
	const op = "smtpmail.NewClient"
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	c, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, errorx.Wrap(err, op)
	}

	return &Client{client: c, from: cfg.From}, nil
}

func (c *Client) SendMail(ctx context.Context, payload mails.Payload) error {
	const op = "smtpmail.Client.SendMail"

	msg := mail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return errorx.Wrap(err, op)
	}
	if err := msg.To(payload.To); err != nil {
		return errorx.Wrap(err, op)
	}
	msg.Subject(payload.Subject)
	msg.SetBodyString(mail.TypeTextPlain, payload.Body)

	return errorx.Wrap(c.client.DialAndSendWithContext(ctx, msg), op)
}
