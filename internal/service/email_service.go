package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/paramountfood/paramount/internal/models"
	"github.com/wneessen/go-mail"
)

var inquiryEmailTemplate = template.Must(template.New("inquiry").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 2px solid #D4AF37;">
    <h2 style="color: #800000; border-bottom: 2px solid #D4AF37; padding-bottom: 10px;">New Contact Form Inquiry</h2>
    <div style="margin: 20px 0;">
      <p><strong style="color: #800000;">Name:</strong> {{.Name}}</p>
      <p><strong style="color: #800000;">Email:</strong> {{.Email}}</p>
      <p><strong style="color: #800000;">Subject:</strong> {{.Subject}}</p>
    </div>
    <div style="background-color: #f9f9f9; padding: 15px; border-left: 4px solid #800000;">
      <p><strong style="color: #800000;">Message:</strong></p>
      <p>{{.Message}}</p>
    </div>
    <div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 12px; color: #666;">
      <p>This inquiry was submitted through the Paramount Food Corporation website contact form.</p>
      <p>Reference: {{.ID}}</p>
      <p>Timestamp: {{.Timestamp.UTC.Format "2006-01-02 15:04:05 UTC"}}</p>
    </div>
  </div>
</body>
</html>`))

// EmailService sends inquiry notifications over SMTP (implicit TLS)
type EmailService struct {
	host      string
	port      int
	username  string
	password  string
	recipient string
	timeout   time.Duration
}

// NewEmailService creates a new SMTP notifier
func NewEmailService(host string, port int, username, password, recipient string) *EmailService {
	return &EmailService{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		recipient: recipient,
		timeout:   10 * time.Second,
	}
}

func (s *EmailService) Channel() string {
	return ChannelEmail
}

// NotifyInquiry emails the inquiry to the configured recipient
func (s *EmailService) NotifyInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	msg, err := s.buildMessage(inquiry)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host,
		mail.WithPort(s.port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
		mail.WithTimeout(s.timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) buildMessage(inquiry *models.Inquiry) (*mail.Msg, error) {
	body, err := renderInquiryEmail(inquiry)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(s.username); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(s.recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	// Staff can answer the customer directly; a malformed address only loses the shortcut
	_ = msg.ReplyTo(inquiry.Email)
	msg.Subject("New Inquiry: " + inquiry.Subject)
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}

func renderInquiryEmail(inquiry *models.Inquiry) (string, error) {
	var buf bytes.Buffer
	if err := inquiryEmailTemplate.Execute(&buf, inquiry); err != nil {
		return "", fmt.Errorf("failed to render email: %w", err)
	}
	return buf.String(), nil
}
