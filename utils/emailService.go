package utils

import (
	"fmt"
	"learnhub/config"
	"learnhub/database"
	"learnhub/models"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Email types understood by the notification endpoint and the schedulers.
const (
	EmailTypeWelcome     = "welcome"
	EmailTypeCompletion  = "completion"
	EmailTypeReminder    = "reminder"
	EmailTypeCertificate = "certificate"
	EmailTypeDigest      = "digest"
)

// ValidEmailTypes is used by the notification validator.
var ValidEmailTypes = map[string]bool{
	EmailTypeWelcome:     true,
	EmailTypeCompletion:  true,
	EmailTypeReminder:    true,
	EmailTypeCertificate: true,
	EmailTypeDigest:      true,
}

// SendEmail delivers one HTML email through SendGrid.
func SendEmail(to, subject, htmlBody string) error {
	from := mail.NewEmail("Learning Hub", config.AppConfig.EmailSender)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, stripTags(htmlBody), htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: status %d body %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}

// stripTags produces the plain-text alternative part.
func stripTags(html string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(html, " "))
}

// NotificationAllowed reports whether the user has the given email type
// enabled. Missing preference rows mean everything is enabled. Welcome
// emails are always allowed.
func NotificationAllowed(userID uint, emailType string) bool {
	if emailType == EmailTypeWelcome {
		return true
	}

	var prefs models.NotificationPreference
	if err := database.Database.Db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		return true
	}

	switch emailType {
	case EmailTypeCompletion:
		return prefs.EmailCompletion
	case EmailTypeCertificate:
		return prefs.EmailCertificate
	case EmailTypeDigest:
		return prefs.EmailDigest
	case EmailTypeReminder:
		return prefs.EmailReminders
	}
	return true
}

// getEmailTemplate wraps body content in the shared portal layout.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #0F172A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #0F172A; line-height: 1.6; }
			.content h2 { color: #0F172A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #F59E0B; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #F59E0B; margin: 20px 0; }
			.progress-row { padding: 8px 0; border-bottom: 1px solid #E0E0E0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>LEARNING HUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Learning Hub. All rights reserved.<br>
				You are receiving this because of your learning portal account.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a newly registered learner.
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Learning Hub!"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Learning Hub</strong>! Your account has been created.</p>
		<p>Browse the module catalog, take quizzes, and earn certificates as you go.</p>
		<a href="%s" class="btn">Start Learning</a>
	`, name, config.AppConfig.AppBaseURL)

	go SendEmail(email, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendCompletionEmail congratulates a learner on finishing a module.
func SendCompletionEmail(email, name, moduleTitle, completionDate, certificateURL string) {
	subject := fmt.Sprintf("Congratulations! You've completed %q", moduleTitle)
	certLine := ""
	if certificateURL != "" {
		certLine = fmt.Sprintf(`<a href="%s" class="btn">View Certificate</a>`, certificateURL)
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You completed <strong>%s</strong> on %s. Great work!</p>
		%s
	`, name, moduleTitle, completionDate, certLine)

	go SendEmail(email, subject, getEmailTemplate("Module Completed", body))
}

// SendCertificateEmail notifies a learner that a certificate was issued.
func SendCertificateEmail(email, name, moduleTitle, certificateURL string) {
	subject := "Your Certificate is Ready!"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your certificate for <strong>%s</strong> has been issued.</p>
		<a href="%s" class="btn">Download Certificate</a>
	`, name, moduleTitle, certificateURL)

	go SendEmail(email, subject, getEmailTemplate("Certificate Issued", body))
}

// ModuleProgressItem is one row in a reminder email.
type ModuleProgressItem struct {
	Title     string
	BestScore int
}

// SendReminderEmail nudges a learner about quizzes they have not passed yet.
func SendReminderEmail(email, name string, inProgress []ModuleProgressItem) {
	subject := "Continue Your Learning Journey"

	var rows strings.Builder
	for _, item := range inProgress {
		rows.WriteString(fmt.Sprintf(`<div class="progress-row"><strong>%s</strong>: best score %d%%</div>`, item.Title, item.BestScore))
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have modules waiting for you:</p>
		%s
		<a href="%s" class="btn">Resume Learning</a>
	`, name, rows.String(), config.AppConfig.AppBaseURL)

	go SendEmail(email, subject, getEmailTemplate("Keep Going!", body))
}
