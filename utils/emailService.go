package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"learnhub/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email. It prefers SendGrid when an API key is
// configured and falls back to plain SMTP otherwise.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail("LearnHub", config.AppConfig.EmailSender)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)

	for _, recipient := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", recipient), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("sendgrid rejected email, code: %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.EmailPassword
	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1D3557; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3557; line-height: 1.6; }
			.content h2 { color: #1D3557; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #457B9D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 LearnHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendEnrollmentEmail confirms a new course enrollment.
func SendEnrollmentEmail(email, username, courseTitle string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">Head to your learning dashboard to get started.</div>
	`, username, courseTitle)

	return SendEmail([]string{email}, "Course Enrollment Confirmation - LearnHub", getEmailTemplate("Enrollment Confirmed", body))
}

// SendProgressReminderEmail nudges a learner with a long-idle enrollment.
func SendProgressReminderEmail(email, username, courseTitle string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You started <strong>%s</strong> a while ago. Pick up where you left off!</p>
	`, username, courseTitle)

	if err := SendEmail([]string{email}, "Keep Learning - LearnHub", getEmailTemplate("Continue Your Course", body)); err != nil {
		log.Printf("Failed to send reminder email to %s: %v", email, err)
	}
}
