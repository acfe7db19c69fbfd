package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriterTagsApp(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "WhatsClone", "debug")
	logger.Debug("hello", "k", "v")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["app"] != "WhatsClone" {
		t.Fatalf("expected app attribute, got %v", line["app"])
	}
	if line["msg"] != "hello" {
		t.Fatalf("unexpected msg %v", line["msg"])
	}
}

func TestNewWithWriterInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "", "loud")
	logger.Debug("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered at info, got %q", buf.String())
	}
	logger.Info("kept")
	if buf.Len() == 0 {
		t.Fatalf("expected info line to be written")
	}
}
