// Package email sends transactional mail through SendGrid. Without an API
// key every send is a silent no-op, so mail never becomes a hard dependency.
package email

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Sender struct {
	apiKey    string
	fromName  string
	fromEmail string
}

func NewSender() *Sender {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set; welcome mail disabled")
	}

	return &Sender{
		apiKey:    apiKey,
		fromName:  getenv("MAIL_FROM_NAME", "Branding Agent"),
		fromEmail: getenv("MAIL_FROM_EMAIL", "no-reply@branding-agent.local"),
	}
}

func (s *Sender) SendWelcome(ctx context.Context, name, email string) error {
	if s.apiKey == "" {
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(name, email)
	subject := "Welcome to your branding assistant"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Fill in your profile (role, industry, interests) and generate your first post.\n", name)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

func getenv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
