// Package email provides transports for delivering notifications over
// email: a real SMTP client and a simulator for offline environments.
package email

import (
	mail "gopkg.in/mail.v2"
)

// Client sends HTML email over SMTP.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	fromName string
}

// NewClient creates a new SMTP email client.
func NewClient(smtpHost string, smtpPort int, username, password, from, fromName string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// Send delivers one message to the given address.
func (c *Client) Send(to, subject, htmlBody string) error {
	message := mail.NewMessage()

	message.SetAddressHeader("From", c.from, c.fromName)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/html", htmlBody)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(message)
}
