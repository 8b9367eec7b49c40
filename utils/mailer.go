package utils

import (
	"fmt"
	"log"
	"strings"

	"github.com/YDahdah/NutriLens/config"

	"gopkg.in/gomail.v2"
)

// sendEmail delivers a message over SMTP. When SMTP is not configured the
// content is logged instead and false is returned so callers can surface the
// link or code another way.
func sendEmail(to, subject, body, htmlBody string) bool {
	cfg := config.App
	if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" || cfg.EmailFrom == "" {
		log.Printf("SMTP not configured. Email content for %s: %s", to, body)
		return false
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.EmailFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return false
	}
	return true
}

func SendVerificationEmail(to, verificationURL string) bool {
	subject := "Verify your NutriLens email"
	body := fmt.Sprintf(
		"Welcome to NutriLens!\n\nPlease verify your email by clicking this link:\n%s\n\nThis link expires in 24 hours.",
		verificationURL,
	)
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #4CAF50;">Welcome to NutriLens!</h2>
  <p>Please verify your email by clicking the button below:</p>
  <p style="margin: 30px 0;">
    <a href="%[1]s" style="display: inline-block; padding: 12px 24px; background-color: #4CAF50; color: white; text-decoration: none; border-radius: 5px; font-weight: bold;">Verify Email Address</a>
  </p>
  <p style="color: #666; font-size: 14px;">Or copy and paste this link into your browser:<br><a href="%[1]s" style="color: #4CAF50;">%[1]s</a></p>
  <p style="color: #999; font-size: 12px;">This link expires in 24 hours.</p>
</div>`, verificationURL)
	return sendEmail(to, subject, body, html)
}

func SendPasswordResetEmail(to, code string) bool {
	subject := "Your NutriLens Password Reset Code"
	body := fmt.Sprintf(
		"Your password reset code is: %s\n\nThis code expires in 10 minutes.\n\nIf you didn't request this, please ignore this email.",
		code,
	)
	return sendEmail(to, subject, body, "")
}

func SendReminderEmail(to, name string) bool {
	subject := "Don't forget to track your meals!"
	loginURL := strings.TrimRight(config.App.FrontendURL, "/") + "/login"
	body := fmt.Sprintf(
		"Hi %s,\n\nWe noticed you haven't logged in for a while. Don't forget to track your meals and stay on top of your nutrition goals!\n\nLog in here: %s\n\nKeep up the great work!\n\nBest regards,\nThe NutriLens Team",
		name, loginURL,
	)
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #4CAF50;">Hi %s!</h2>
  <p>We noticed you haven't logged in for a while. Don't forget to track your meals and stay on top of your nutrition goals!</p>
  <p style="margin: 30px 0;">
    <a href="%s" style="display: inline-block; padding: 12px 24px; background-color: #4CAF50; color: white; text-decoration: none; border-radius: 5px; font-weight: bold;">Log In to NutriLens</a>
  </p>
  <p>Keep up the great work!</p>
  <p style="color: #666; font-size: 14px;">Best regards,<br><strong>The NutriLens Team</strong></p>
</div>`, name, loginURL)
	return sendEmail(to, subject, body, html)
}
