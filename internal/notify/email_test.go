// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"encoding/base64"
	"strings"
	"testing"

	"contract-scan/internal/config"
)

func TestBuildMessage(t *testing.T) {
	attachment := []byte("PDF BYTES HERE")
	msg := string(buildMessage("bot@example.com", "client@company.com",
		"Contract Updated: NDA (v2)", "Please find the new version attached.",
		"contract_001-v2.pdf", attachment))

	for _, want := range []string{
		"From: bot@example.com",
		"To: client@company.com",
		"MIME-Version: 1.0",
		"multipart/mixed",
		"Content-Transfer-Encoding: base64",
		`filename="contract_001-v2.pdf"`,
		"Please find the new version attached.",
		base64.StdEncoding.EncodeToString(attachment),
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestBuildMessage_WrapsBase64Lines(t *testing.T) {
	attachment := make([]byte, 600)
	msg := string(buildMessage("a@b.c", "d@e.f", "s", "b", "f.bin", attachment))

	inAttachment := false
	for _, line := range strings.Split(msg, "\r\n") {
		if strings.Contains(line, "Content-Disposition") {
			inAttachment = true
			continue
		}
		if inAttachment && len(line) > 76 {
			t.Errorf("base64 line exceeds 76 chars: %d", len(line))
		}
	}
}

func TestSendWithAttachment_NoSender(t *testing.T) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("SMTP_FROM", "")
	m := NewMailer(cfg)
	if err := m.SendWithAttachment("x@y.z", "s", "b", "/nonexistent"); err == nil {
		t.Error("expected error when no sender address is configured")
	}
}
