package mailing

import (
	"MealGo-Backend/internal/utils"
	"errors"
	"fmt"
	"html"
	"strconv"

	"gopkg.in/gomail.v2"
)

var ErrMailDisabled = errors.New("smtp is not configured")

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// Mailer sends one html mail. Services take it as a dependency so tests can
// swap it out.
type Mailer interface {
	SendMail(toEmail string, subject string, body string) error
}

type smtpMailer struct{}

func NewMailer() Mailer {
	return smtpMailer{}
}

func (smtpMailer) SendMail(toEmail string, subject string, body string) error {
	return SendMail(toEmail, subject, body)
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()
	if emailConfig.SMTPHost == "" {
		return ErrMailDisabled
	}

	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", emailConfig.SMTPEmail, emailConfig.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func WelcomeBody(name string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>Your MealGo account is ready. Start by adding recipes and planning your week at <a href=\"%s\">%s</a>.</p>",
		html.EscapeString(name), utils.GetConfig("APP_URL"), utils.GetConfig("APP_URL"),
	)
}

func SubscriptionBody(name, plan string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>Your <b>%s</b> plan is now active. Thanks for supporting MealGo!</p>",
		html.EscapeString(name), html.EscapeString(plan),
	)
}
