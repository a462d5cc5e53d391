package document

import (
	"strings"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	doc, err := New("report-2024_q1", "Q1 Report", "quarterly numbers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "report-2024_q1" {
		t.Errorf("unexpected ID: %s", doc.ID())
	}
	if doc.DisplayName() != "Q1 Report" {
		t.Errorf("unexpected display name: %s", doc.DisplayName())
	}
}

func TestNew_DisplayNameFallsBackToID(t *testing.T) {
	doc, err := New("notes", "", "some notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.DisplayName() != "notes" {
		t.Errorf("expected display name to fall back to ID, got %s", doc.DisplayName())
	}
}

func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		content string
	}{
		{"empty id", "", "content"},
		{"bad id chars", "has spaces", "content"},
		{"id too long", strings.Repeat("a", 257), "content"},
		{"empty content", "doc", ""},
		{"content too large", "doc", strings.Repeat("x", MaxContentSize+1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.id, "", tc.content); err == nil {
				t.Error("expected error")
			}
		})
	}
}
