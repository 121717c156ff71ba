package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

var (
	smtpHost      = os.Getenv("SMTP_HOST")
	smtpPort      = os.Getenv("SMTP_PORT")
	smtpUsername  = os.Getenv("SMTP_USERNAME")
	smtpPassword  = os.Getenv("SMTP_PASSWORD")
	smtpFromName  = os.Getenv("SMTP_FROM_NAME")
	smtpFromEmail = os.Getenv("SMTP_FROM_EMAIL")
	frontendURL   = os.Getenv("FRONTEND_URL")
)

func sendEmail(to, subject, body string) error {
	if smtpHost == "" || smtpUsername == "" || smtpPassword == "" {
		fmt.Println("⚠️ SMTP not configured. Email not sent.")
		return nil
	}

	if smtpFromEmail == "" {
		smtpFromEmail = smtpUsername
	}

	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)
	auth := smtp.PlainAuth("", smtpUsername, smtpPassword, smtpHost)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", smtpFromName, smtpFromEmail),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, smtpFromEmail, []string{to}, []byte(msg))
}

// SendResetLink mails a password reset link to the user.
func SendResetLink(to, token string) error {
	base := frontendURL
	if base == "" {
		base = "http://localhost:5173"
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", base, token)
	body := fmt.Sprintf("Şifrenizi sıfırlamak için bağlantıya tıklayın:\n\n%s\n\nBağlantı 15 dakika geçerlidir.", link)
	return sendEmail(to, "AGD Sultangazi - Şifre Sıfırlama", body)
}

// SendNotificationEmail delivers a broadcast notification to one recipient.
func SendNotificationEmail(to, title, message, senderName string) error {
	body := fmt.Sprintf("%s\n\n%s\n\nGönderen: %s", title, message, senderName)
	return sendEmail(to, fmt.Sprintf("AGD Sultangazi Duyuru: %s", title), body)
}
