package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoggerCreation(t *testing.T) {
	// Set env vars for testing
	os.Setenv("SIMPILOT_SESSION_ID", "test-session")
	os.Setenv("SIMPILOT_UDID", "0000-1111")
	defer os.Unsetenv("SIMPILOT_SESSION_ID")
	defer os.Unsetenv("SIMPILOT_UDID")

	logger := New("test-component")

	if logger.component != "test-component" {
		t.Errorf("expected component 'test-component', got '%s'", logger.component)
	}
	if logger.session != "test-session" {
		t.Errorf("expected session 'test-session', got '%s'", logger.session)
	}
	if logger.udid != "0000-1111" {
		t.Errorf("expected udid '0000-1111', got '%s'", logger.udid)
	}
}

func TestLoggerWithSession(t *testing.T) {
	logger := New("component").WithSession("my-session")

	if logger.session != "my-session" {
		t.Errorf("expected session 'my-session', got '%s'", logger.session)
	}
}

func TestLoggerWithUDID(t *testing.T) {
	logger := New("component").WithUDID("abcd-1234")

	if logger.udid != "abcd-1234" {
		t.Errorf("expected udid 'abcd-1234', got '%s'", logger.udid)
	}
}

func TestEventSerialization(t *testing.T) {
	event := Event{
		Timestamp: "2024-01-01T00:00:00Z",
		Level:     LevelInfo,
		Component: "test",
		Event:     "test_event",
		Session:   "s1",
		UDID:      "u1",
		Duration:  100,
		Error:     "",
		Extra: map[string]interface{}{
			"key": "value",
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}

	// Verify JSON structure
	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to unmarshal event: %v", err)
	}

	if parsed["level"] != "info" {
		t.Errorf("expected level 'info', got '%v'", parsed["level"])
	}
	if parsed["component"] != "test" {
		t.Errorf("expected component 'test', got '%v'", parsed["component"])
	}
	if parsed["duration_ms"].(float64) != 100 {
		t.Errorf("expected duration_ms 100, got '%v'", parsed["duration_ms"])
	}
}

func TestInterpretEvent(t *testing.T) {
	// Capture stderr
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	InterpretEvent("tap 100, 200", "TAP", true, 3*time.Millisecond)

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	// Verify JSON output
	var event Event
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &event); err != nil {
		t.Fatalf("failed to parse output as JSON: %v (output: %s)", err, output)
	}

	if event.Level != LevelInfo {
		t.Errorf("expected level 'info', got '%s'", event.Level)
	}
	if event.Component != "nlp" {
		t.Errorf("expected component 'nlp', got '%s'", event.Component)
	}
	if event.Event != "interpret" {
		t.Errorf("expected event 'interpret', got '%s'", event.Event)
	}
	if event.Extra["type"] != "TAP" {
		t.Errorf("expected type 'TAP', got '%v'", event.Extra["type"])
	}
	if event.Extra["matched"] != true {
		t.Errorf("expected matched true, got '%v'", event.Extra["matched"])
	}
}

func TestWarnIncludesError(t *testing.T) {
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	New("engine").Warn("dispatch_failed", map[string]interface{}{"attempt": 1}, &testError{"boom"})

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)

	var event Event
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &event); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}

	if event.Level != LevelWarn {
		t.Errorf("expected level 'warn', got '%s'", event.Level)
	}
	if event.Error != "boom" {
		t.Errorf("expected error 'boom', got '%s'", event.Error)
	}
}
