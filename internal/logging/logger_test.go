package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"timesheet/internal/logging"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("task created", logging.String("task_id", "abc"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "task created" {
		t.Fatalf("unexpected message: %v", record["msg"])
	}
	if record["task_id"] != "abc" {
		t.Fatalf("missing task_id attr: %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatal("info record should have been filtered")
	}
	if !strings.Contains(out, "loud") {
		t.Fatal("warn record missing")
	}
}

func TestWithContextAddsPrincipalFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := logging.WithPrincipal(context.Background(), "emp-1", "employee")
	logging.WithContext(ctx, logger).Info("hello")
	out := buf.String()
	if !strings.Contains(out, "caller_id=emp-1") {
		t.Fatalf("missing caller_id field: %q", out)
	}
	if !strings.Contains(out, "role=employee") {
		t.Fatalf("missing role field: %q", out)
	}
}
