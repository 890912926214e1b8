package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridNotifier emails a plain-text summary of each submission to the
// sales inbox.
type SendGridNotifier struct {
	client *sendgrid.Client
	from   *mail.Email
	to     *mail.Email
}

func NewSendGridNotifier(apiKey, fromEmail, toEmail string) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("The Quartz Company website", fromEmail),
		to:     mail.NewEmail("Sales", toEmail),
	}
}

func (n *SendGridNotifier) Notify(ctx context.Context, e Envelope) error {
	subject, text := Summary(e)
	message := mail.NewSingleEmail(n.from, subject, n.to, text, "<pre>"+html.EscapeString(text)+"</pre>")
	if e.Email != "" {
		message.SetReplyTo(mail.NewEmail(e.Name, e.Email))
	}

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("send notification: sendgrid status %d", response.StatusCode)
	}
	return nil
}

// Summary renders the subject and body of a notification email.
func Summary(e Envelope) (string, string) {
	subject := fmt.Sprintf("New %s submission %s", e.Kind, e.Reference)

	var body bytes.Buffer
	fmt.Fprintf(&body, "Reference: %s\n", e.Reference)
	fmt.Fprintf(&body, "Received: %s\n", e.CreatedAt.Format("02 Jan 2006 15:04 MST"))
	if e.Name != "" {
		fmt.Fprintf(&body, "Name: %s\n", e.Name)
	}
	if e.Email != "" {
		fmt.Fprintf(&body, "Email: %s\n", e.Email)
	}
	body.WriteString("\n")
	if err := json.Indent(&body, e.Payload, "", "  "); err != nil {
		body.Write(e.Payload)
	}
	body.WriteString("\n")
	return subject, body.String()
}
