package utils

import (
	"academy/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends a single transactional email. Tests swap in a double.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// Mail is the active mail client
var Mail Mailer = &sendGridMailer{}

type sendGridMailer struct{}

func (m *sendGridMailer) Send(to, subject, htmlBody string) error {
	from := mail.NewEmail("EarnProject Academy", config.AppConfig.EmailSender)
	toAddr := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, toAddr, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// HTML wrapper shared by all outbound mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px; }
			.container { max-width: 600px; margin: auto; background: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
			.header h2 { color: #333333; text-align: center; }
			.content { color: #555555; line-height: 1.6; font-size: 15px; }
			.highlight { text-align: center; color: #4CAF50; font-size: 32px; margin: 20px 0; }
			.footer { text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h2>%s</h2></div>
			<div class="content">%s</div>
			<div class="footer">EarnProject Academy Team</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendOTPEmail delivers the registration code. Called synchronously: a send
// failure fails the send-otp request.
func SendOTPEmail(otp, email string) error {
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 class="highlight">%s</h1>
		<p>This OTP is valid for 5 minutes. Do not share it with anyone.</p>
	`, otp)

	return Mail.Send(email, "Your OTP Code", getEmailTemplate("OTP Verification", body))
}

// SendPasswordResetEmail delivers the reset link containing the raw token
func SendPasswordResetEmail(email, resetURL string) error {
	body := fmt.Sprintf(`
		<p>You requested a password reset.</p>
		<p><a href="%s">Click here to reset your password</a></p>
		<p>This link expires in 15 minutes. If you did not request it, you can ignore this email.</p>
	`, resetURL)

	return Mail.Send(email, "Password Reset Request", getEmailTemplate("Password Reset", body))
}

// SendPaymentSuccessEmail confirms a verified payment. Fire-and-forget: the
// outcome is logged and never affects the enrollment transition.
func SendPaymentSuccessEmail(email, name, courseTitle string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment was successful and your enrollment is confirmed.</p>
		<h3 class="highlight" style="font-size: 20px;">%s</h3>
		<p>You can now login and access your course content.</p>
	`, name, courseTitle)

	go func() {
		if err := Mail.Send(email, "Payment Successful - EarnProject Academy", getEmailTemplate("Payment Successful", body)); err != nil {
			log.Printf("Error sending payment confirmation email to %s: %v", email, err)
			return
		}
		log.Printf("Payment confirmation email sent to %s", email)
	}()
}
