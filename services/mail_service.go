package services

import (
	"bytes"
	"html/template"

	"gin-accounts/apperrors"
	"gin-accounts/infra"
	"gin-accounts/templates"

	"gopkg.in/gomail.v2"
)

type IMailService interface {
	Render(templateName string, data map[string]any) (string, error)
	Send(recipient string, subject string, htmlBody string, fallback string) error
}

type MailService struct {
	cfg       *infra.Config
	templates *template.Template
}

func NewMailService(cfg *infra.Config) (IMailService, error) {
	tmpl, err := template.ParseFS(templates.FS, "*.html")
	if err != nil {
		return nil, err
	}
	return &MailService{cfg: cfg, templates: tmpl}, nil
}

func (s *MailService) Render(templateName string, data map[string]any) (string, error) {
	tmpl := s.templates.Lookup(templateName)
	if tmpl == nil {
		return "", apperrors.ErrTemplateNotFound
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// Send dispatches a multipart message over SMTP. With a non-empty fallback
// the plaintext part goes first so mail clients prefer the HTML alternative.
func (s *MailService) Send(recipient string, subject string, htmlBody string, fallback string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.MailUsername)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)

	if fallback != "" {
		m.SetBody("text/plain", fallback)
		m.AddAlternative("text/html", htmlBody)
	} else {
		m.SetBody("text/html", htmlBody)
	}

	d := gomail.NewDialer(s.cfg.MailServer, s.cfg.MailPort, s.cfg.MailUsername, s.cfg.MailPassword)
	return d.DialAndSend(m)
}
