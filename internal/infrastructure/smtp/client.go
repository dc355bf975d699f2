package smtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"path/filepath"
	"time"
	"wellness-service/internal/config"
	"wellness-service/internal/domain/entity"
	"wellness-service/internal/domain/service"

	"gopkg.in/gomail.v2"
)

const reminderTemplateName = "reminder"

// Client sends reminder emails over SMTP
type Client struct {
	cfg      *config.SMTPConfig
	reminder *template.Template
	location *time.Location
}

var _ service.Mailer = (*Client)(nil)

// NewClient creates a new SMTP client.
// templatesPath may hold a reminder.html overriding the built-in template.
func NewClient(cfg *config.SMTPConfig, templatesPath string, location *time.Location) (*Client, error) {
	if location == nil {
		location = time.UTC
	}

	tmpl, err := loadTemplate(templatesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	return &Client{cfg: cfg, reminder: tmpl, location: location}, nil
}

func loadTemplate(templatesPath string) (*template.Template, error) {
	if templatesPath != "" {
		tmpl, err := template.ParseFiles(filepath.Join(templatesPath, reminderTemplateName+".html"))
		if err == nil {
			return tmpl, nil
		}
	}

	tmpl, err := template.New(reminderTemplateName).Parse(defaultReminderTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default reminder template: %w", err)
	}
	return tmpl, nil
}

// SendReminderEmail renders and sends the reminder to one address
func (c *Client) SendReminderEmail(ctx context.Context, to string, event *entity.ReminderEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body, err := c.render(event)
	if err != nil {
		return err
	}

	return c.send(to, subject, body)
}

func (c *Client) render(event *entity.ReminderEvent) (string, string, error) {
	data := map[string]interface{}{
		"Title":   event.Title,
		"Message": event.Message,
		"Type":    string(event.ReminderType),
		"DueAt":   event.DueAt.In(c.location).Format("Mon 2 Jan 15:04"),
	}

	var buf bytes.Buffer
	if err := c.reminder.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render reminder email: %w", err)
	}

	return "Reminder: " + event.Title, buf.String(), nil
}

// send sends an email using gomail
func (c *Client) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", c.cfg.FromName, c.cfg.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)

	// UseTLS selects STARTTLS (587); otherwise implicit SSL (465)
	d.SSL = !c.cfg.UseTLS
	d.TLSConfig = &tls.Config{ServerName: c.cfg.Host}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

const defaultReminderTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #4CAF50;">{{.Title}}</h2>
        {{if .Message}}<p>{{.Message}}</p>{{end}}
        <p style="color: #666;">Scheduled for {{.DueAt}} ({{.Type}} reminder)</p>
        <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
        <p style="color: #999; font-size: 12px;">This is an automated email, please do not reply.</p>
    </div>
</body>
</html>
`
