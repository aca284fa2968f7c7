package services

import (
	"fmt"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"

	"dulcetienda_server/structs"
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: resend.NewClient(cfg.Email.ApiKey),
	}
}

// Enabled reports whether outgoing mail is configured. Without an API key and
// sender address the service is a no-op.
func (es *EmailService) Enabled() bool {
	return es.cfg.Email.ApiKey != "" && es.cfg.Email.From != ""
}

// SendOrderConfirmation mails the customer after their order was persisted.
func (es *EmailService) SendOrderConfirmation(to, name string, orderID int64, productName string) error {
	if !es.Enabled() {
		return nil
	}

	if name == "" {
		name = "Cliente"
	}

	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head><meta charset="UTF-8"></head>
		<body>
			<h1>¡Gracias por tu pedido, %s!</h1>
			<p>Hemos recibido tu pedido <strong>#%d</strong> de <strong>%s</strong>.</p>
			<p>Nos pondremos en contacto contigo para coordinar la entrega.</p>
		</body>
		</html>
	`, name, orderID, productName)

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      []string{to},
		Subject: fmt.Sprintf("Pedido #%d recibido", orderID),
		Html:    body,
	}

	if _, err := es.client.Emails.Send(params); err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}
