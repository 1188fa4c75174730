// Package mailer sends transactional storefront email over SMTP.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"text/template"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog"

	"github.com/fitin/storefront/internal/config"
	"github.com/fitin/storefront/internal/log"
	inOtel "github.com/fitin/storefront/internal/otel"
	"github.com/fitin/storefront/notification/internal/otel"
)

type Mailer struct {
	cfg config.Smtp
}

func NewMailer(cfg config.Smtp) Mailer {
	return Mailer{cfg: cfg}
}

func (m Mailer) Send(c context.Context, to string, subject string, body string) error {
	c, span := otel.Tracer.Start(c, "Mailer Send")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Mailer Send").
		Str(log.KeyMailTo, to).
		Str("subject", subject).
		Logger()

	logger.Info().Msg("sending email")
	mail := email.NewEmail()
	mail.From = m.cfg.From
	mail.To = []string{to}
	mail.Subject = subject
	mail.Text = []byte(body)
	err := mail.Send(
		fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port),
		smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host),
	)
	if err != nil {
		err = fmt.Errorf("failed sending email to=%s with error=%w", to, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("sent email")

	return nil
}

func (m Mailer) OwnerEmail() string {
	return m.cfg.OwnerEmail
}

const SubjectOrderConfirmation = "Your FITIN Store Order Confirmation"

type OrderEmailItem struct {
	Name     string
	Size     string
	Quantity int32
	Subtotal string
}

type OrderEmail struct {
	OrderID  string
	Customer string
	Email    string
	Phone    string
	Address  string
	City     string
	Zip      string
	Date     string
	Total    string
	Items    []OrderEmailItem
}

var orderConfirmationTemplate = template.Must(template.New("orderConfirmation").Parse(
	`Hi {{.Customer}},

Thank you for shopping with FITIN Store! Your order has been placed.

Order ID: {{.OrderID}}
Order Date: {{.Date}}

Items:
{{range .Items}}- {{.Name}}{{if .Size}} [{{.Size}}]{{end}} (x{{.Quantity}}) - PKR {{.Subtotal}}
{{end}}
Total: PKR {{.Total}}

Shipping to:
{{.Address}}, {{.City}} {{.Zip}}
Phone: {{.Phone}}

We will email you again when your order ships.

FITIN Store
`,
))

var ownerCopyTemplate = template.Must(template.New("ownerCopy").Parse(
	`New order received.

Order ID: {{.OrderID}}
Order Date: {{.Date}}
Customer: {{.Customer}} ({{.Email}})
Phone: {{.Phone}}

Items:
{{range .Items}}- {{.Name}}{{if .Size}} [{{.Size}}]{{end}} (x{{.Quantity}}) - PKR {{.Subtotal}}
{{end}}
Total: PKR {{.Total}}

Shipping to:
{{.Address}}, {{.City}} {{.Zip}}
`,
))

func RenderOrderConfirmation(data OrderEmail) (string, error) {
	buf := bytes.Buffer{}
	if err := orderConfirmationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed rendering order confirmation with error=%w", err)
	}
	return buf.String(), nil
}

func SubjectOwnerCopy(orderID string) string {
	return fmt.Sprintf("New FITIN Store Order %s", orderID)
}

func RenderOwnerCopy(data OrderEmail) (string, error) {
	buf := bytes.Buffer{}
	if err := ownerCopyTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed rendering owner copy with error=%w", err)
	}
	return buf.String(), nil
}

const contactTemplateText = `New message from the FITIN Store contact form.

Name: {{.Name}}
Email: {{.Email}}

{{.Message}}
`

var contactTemplate = template.Must(template.New("contact").Parse(contactTemplateText))

type ContactEmail struct {
	Name    string
	Email   string
	Message string
}

func RenderContact(data ContactEmail) (string, error) {
	buf := bytes.Buffer{}
	if err := contactTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed rendering contact message with error=%w", err)
	}
	return buf.String(), nil
}
