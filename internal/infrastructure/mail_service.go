package infrastructure

import (
	"context"
	"fmt"
	"os"

	"github.com/bearh141/todo-list/internal/logging"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer is the outbound mail collaborator. The reminder sweep hands it
// a recipient, subject and body and does not care how it is delivered.
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

type SendgridMailer struct {
	apiKey     string
	sender     string
	senderName string
}

func NewSendgridMailer() *SendgridMailer {
	return &SendgridMailer{
		apiKey:     os.Getenv("EMAIL_API_KEY"),
		sender:     os.Getenv("EMAIL_SENDER"),
		senderName: "Todo List",
	}
}

func (m *SendgridMailer) Send(ctx context.Context, recipient, subject, body string) error {
	from := mail.NewEmail(m.senderName, m.sender)
	to := mail.NewEmail("", recipient)

	message := mail.NewSingleEmail(from, subject, to, body, fmt.Sprintf("<p>%s</p>", body))
	client := sendgrid.NewSendClient(m.apiKey)

	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logging.Logger.Errorf("Failed to send email to %s: %v", recipient, err)
		return err
	}

	logging.Logger.Infof("Email sent to %s, status %d", recipient, response.StatusCode)
	return nil
}
