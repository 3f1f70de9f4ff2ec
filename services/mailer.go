// services/mailer.go - Registration credential mail
package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// SendCredentials mails a freshly registered user their DNI and generated
// password. When SMTP is not configured the mail is skipped with a log
// line so local environments keep working.
func SendCredentials(email, name, dni, password string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("SMTP not configured, skipping credentials mail to %s", email)
		return nil
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("SMTP_FROM")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASSWORD")

	subject := "Credenciales para el taller de resolución de problemas"
	body := fmt.Sprintf(
		"Hola %s,\r\n\r\nTu DNI para iniciar sesión es: %s\r\n\r\nTu contraseña para iniciar sesión es: %s\r\n\r\n¡Saludos!\r\nTaller de resolución de problemas UNLu\r\n",
		name, dni, password)

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", from, email, subject, body))

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}

	if err := smtp.SendMail(host+":"+port, auth, from, []string{email}, msg); err != nil {
		return fmt.Errorf("failed to send credentials mail: %w", err)
	}
	return nil
}
