package usecase

import (
	"bytes"
	"html/template"
)

type Email struct {
	To      []string
	From    string
	Subject string
	Body    string
}

var ownerNotificationTmpl = template.Must(template.New("owner").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Subject:</strong> {{if .Subject}}{{.Subject}}{{else}}No subject{{end}}</p>
  <h3>Message:</h3>
  <p style="line-height: 1.6;">{{.Message}}</p>
  <p style="font-size: 14px;">Reply directly to this email to respond to {{.Name}}.</p>
</div>`))

var autoReplyTmpl = template.Must(template.New("reply").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Thank you for reaching out!</h2>
  <p>Hi {{.Name}},</p>
  <p>Thank you for your message. I've received your inquiry and will get back
  to you within 24-48 hours.</p>
  <p><strong>Your message:</strong></p>
  <p style="font-style: italic;">"{{.Message}}"</p>
  <p>Best regards,<br/><strong>Anaphygon</strong></p>
</div>`))

func (u Usecase) buildOwnerNotification(msg ContactMessage, ownerEmail string) (Email, error) {
	var body bytes.Buffer
	if err := ownerNotificationTmpl.Execute(&body, msg); err != nil {
		return Email{}, err
	}

	subject := "Portfolio Contact: New Message"
	if msg.Subject != "" {
		subject = "Portfolio Contact: " + msg.Subject
	}

	return Email{
		To:      []string{ownerEmail},
		From:    ownerEmail,
		Subject: subject,
		Body:    body.String(),
	}, nil
}

func (u Usecase) buildAutoReply(msg ContactMessage, ownerEmail string) (Email, error) {
	var body bytes.Buffer
	if err := autoReplyTmpl.Execute(&body, msg); err != nil {
		return Email{}, err
	}

	return Email{
		To:      []string{msg.Email},
		From:    ownerEmail,
		Subject: "Thank you for contacting me!",
		Body:    body.String(),
	}, nil
}
