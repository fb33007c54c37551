package mailer

import (
	"fmt"

	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/config"
	"github.com/RimshaSaif36/Classic-Decor-sub000/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail. Sends are fire-and-forget: a failed
// confirmation must never block or fail the order flow.
type Mailer interface {
	SendOrderConfirmation(to, customerName, orderID string, total float64) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer() (*SMTPMailer, error) {
	cfg := config.GlobalConfig.Mail
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("mail config is missing")
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}, nil
}

func (m *SMTPMailer) SendOrderConfirmation(to, customerName, orderID string, total float64) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Classic Decor: order %s confirmed", orderID))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nThank you for your purchase. Your order %s (PKR %.2f) has been confirmed and will be processed shortly.\n\nClassic Decor",
		customerName, orderID, total,
	))

	return m.dialer.DialAndSend(msg)
}

// GlobalMailer instance, nil when mail is not configured.
var GlobalMailer Mailer

func InitMailer() error {
	mailer, err := NewSMTPMailer()
	if err != nil {
		return err
	}
	GlobalMailer = mailer
	return nil
}

// SendOrderConfirmationAsync dispatches the confirmation on a goroutine and
// logs failures. Safe to call with mail unconfigured.
func SendOrderConfirmationAsync(to, customerName, orderID string, total float64) {
	if GlobalMailer == nil || to == "" {
		return
	}
	go func() {
		if err := GlobalMailer.SendOrderConfirmation(to, customerName, orderID, total); err != nil {
			if logger.Log != nil {
				logger.Log.Error("Failed to send order confirmation",
					zap.String("order_id", orderID),
					zap.Error(err),
				)
			}
		}
	}()
}
