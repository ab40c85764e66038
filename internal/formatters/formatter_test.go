// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"strings"
	"testing"

	"contract-scan/internal/checks/risk"
	"contract-scan/internal/contract"
)

type stubFormatter struct{}

func (s *stubFormatter) Format(doc contract.Document, findings []contract.Finding, assessment *risk.Assessment, options FormatterOptions) (string, error) {
	return "stub-output", nil
}
func (s *stubFormatter) Name() string          { return "stub" }
func (s *stubFormatter) Description() string   { return "stub formatter for tests" }
func (s *stubFormatter) FileExtension() string { return ".stub" }

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubFormatter{})

	f, ok := registry.Get("stub")
	if !ok {
		t.Fatal("registered formatter not found")
	}
	if f.Name() != "stub" {
		t.Errorf("name = %q", f.Name())
	}
	if len(registry.List()) != 1 {
		t.Errorf("list = %v", registry.List())
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	registry := NewRegistry()
	if _, ok := registry.Get("nope"); ok {
		t.Error("expected missing formatter to return false")
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := Export("definitely-not-registered", contract.Document{}, nil, nil, FormatterOptions{})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("error = %v", err)
	}
}
