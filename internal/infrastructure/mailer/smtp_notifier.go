// Package mailer implementa el aviso de cambio de estado por correo SMTP.
package mailer

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"
	"github.com/jmestre/joyeria-api/internal/application/workflow"
	"github.com/jmestre/joyeria-api/internal/domain/entity"
	"github.com/jmestre/joyeria-api/pkg/config"
)

var _ workflow.Notifier = (*SMTPNotifier)(nil)

// SMTPNotifier envía los avisos de cambio de estado con gomail.
type SMTPNotifier struct {
	cfg config.SMTPConfig
}

// NewSMTPNotifier construye el notifier con la configuración SMTP.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// NotifyStatusChange envía un correo al cliente con el nuevo estado del pedido.
// El workflow lo trata como best-effort: un fallo aquí solo se registra.
func (n *SMTPNotifier) NotifyStatusChange(_ context.Context, order *entity.Order, entry *entity.OrderStatusEntry, customerEmail string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", customerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Pedido %s: %s", order.OrderNumber, entry.Status))

	body := fmt.Sprintf("Su pedido %s cambió de estado.\n\nNuevo estado: %s\n", order.OrderNumber, entry.Status)
	if entry.Comment != "" {
		body += "\nNota: " + entry.Comment + "\n"
	}
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar aviso de estado: %w", err)
	}
	return nil
}
