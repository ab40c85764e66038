// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package notify sends contract update notifications by email, with the
// new contract version attached. SMTP credentials come from the
// environment (SMTP_USERNAME / SMTP_PASSWORD), optionally loaded from a
// dotenv file; they are never written to configuration.
package notify

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"contract-scan/internal/config"
)

// Mailer sends notification mail through a single SMTP endpoint.
type Mailer struct {
	host     string
	port     int
	from     string
	username string
	password string
}

// NewMailer builds a mailer from configuration and environment. A
// missing or unreadable env file is not an error: the process
// environment may already carry the credentials, and an unauthenticated
// local relay needs none.
func NewMailer(cfg *config.Config) *Mailer {
	envFile := cfg.Notify.EnvFile
	if envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	from := cfg.Notify.From
	if from == "" {
		from = os.Getenv("SMTP_FROM")
	}

	return &Mailer{
		host:     cfg.Notify.SMTPHost,
		port:     cfg.Notify.SMTPPort,
		from:     from,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
	}
}

// SendWithAttachment sends a plain-text message with one file attached.
func (m *Mailer) SendWithAttachment(to, subject, body, attachmentPath string) error {
	if m.from == "" {
		return fmt.Errorf("no sender address configured (set notify.from or SMTP_FROM)")
	}

	data, err := os.ReadFile(filepath.Clean(attachmentPath))
	if err != nil {
		return fmt.Errorf("error reading attachment: %w", err)
	}

	msg := buildMessage(m.from, to, subject, body, filepath.Base(attachmentPath), data)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("error sending mail: %w", err)
	}
	return nil
}

// buildMessage assembles a multipart MIME message with a text body and a
// base64-encoded attachment.
func buildMessage(from, to, subject, body, filename string, attachment []byte) []byte {
	boundary := "contract-scan-attachment-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	fmt.Fprintf(&b, "Content-Type: application/octet-stream; name=%q\r\n", filename)
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", filename)

	encoded := base64.StdEncoding.EncodeToString(attachment)
	// RFC 2045 line length limit
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
