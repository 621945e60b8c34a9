// Package email provides the outbound email client.
//
// It sends through Resend and renders HTML bodies from template files
// under templates/emails. When no API key is configured, sending becomes a
// logged no-op so the rest of the application never has to care.
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/prasdika/storefront/internal/config"
)

// Client wraps the Resend client.
type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

// NewClient creates an email Client. An empty API key disables sending.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	var client *resend.Client
	if cfg.Email.ResendAPIKey != "" {
		client = resend.NewClient(cfg.Email.ResendAPIKey)
	}

	return &Client{
		client: client,
		from:   cfg.Email.FromAddress,
		logger: logger,
	}
}

// SendEmail renders the named template with data and sends it.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	if c.client == nil {
		c.logger.Warn().
			Str("to", to).
			Str("template", string(templateName)).
			Msg("email sending disabled, skipping")
		return nil
	}

	tmplPath := fmt.Sprintf("%s/%s.html", "templates/emails", templateName)

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to render email template %s", templateName)
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	c.logger.Info().
		Str("to", to).
		Str("template", string(templateName)).
		Msg("email sent")

	return nil
}

// SendOrderConfirmationEmail sends the confirmation for a freshly created
// order.
func (c *Client) SendOrderConfirmationEmail(to, orderID, productName string, quantity int) error {
	return c.SendEmail(to, "Your order is confirmed", TemplateOrderConfirmation, map[string]string{
		"OrderID":     orderID,
		"ProductName": productName,
		"Quantity":    fmt.Sprintf("%d", quantity),
	})
}
