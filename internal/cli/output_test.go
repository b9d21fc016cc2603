package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutput_PrintResponse_Raw(t *testing.T) {
	out, stdout, _ := newTestOutput()

	raw := `{"outputs":[{"outputs":[{"results":{"message":{"text":"hi"}}}]}]}`
	out.PrintResponse([]byte(raw), true)

	// raw-режим печатает тело как получено, без переформатирования.
	if stdout.String() != raw+"\n" {
		t.Errorf("expected verbatim body, got %q", stdout.String())
	}
}

func TestOutput_PrintResponse_Extracted(t *testing.T) {
	out, stdout, _ := newTestOutput()

	out.PrintResponse([]byte(`{"outputs":[{"outputs":[{"results":{"message":{"text":"hi"}}}]}]}`), false)

	if stdout.String() != "hi\n" {
		t.Errorf("expected extracted reply, got %q", stdout.String())
	}
}

func TestOutput_PrintResponse_Fallback(t *testing.T) {
	out, stdout, _ := newTestOutput()

	out.PrintResponse([]byte(`{"a":1}`), false)

	want := "{\n  \"a\": 1\n}\n"
	if stdout.String() != want {
		t.Errorf("expected indented document, got %q", stdout.String())
	}
}

func TestOutput_JSON_NotJSON(t *testing.T) {
	out, stdout, _ := newTestOutput()

	out.JSON([]byte("plain text body"))

	if stdout.String() != "plain text body\n" {
		t.Errorf("expected body as is, got %q", stdout.String())
	}
}

func TestOutput_Save(t *testing.T) {
	out, _, _ := newTestOutput()
	path := filepath.Join(t.TempDir(), "out.json")

	if err := out.Save(path, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read save file: %v", err)
	}
	if string(data) != "{\n  \"a\": 1\n}\n" {
		t.Errorf("expected formatted JSON, got %q", data)
	}
}
