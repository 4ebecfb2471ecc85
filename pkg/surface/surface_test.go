package surface

import (
	"bytes"
	"testing"
)

func TestWriterPaint(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, 100)

	if err := s.Paint("hello"); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	if got := buf.String(); got != "hello\n" {
		t.Errorf("Paint wrote %q, want %q", got, "hello\n")
	}
}

func TestWriterFixedWidth(t *testing.T) {
	s := NewWriter(&bytes.Buffer{}, 132)
	if s.Width() != 132 {
		t.Errorf("Width = %d, want 132", s.Width())
	}
}

func TestWriterAlwaysLive(t *testing.T) {
	s := NewWriter(&bytes.Buffer{}, 80)
	if !s.Live() {
		t.Error("writer surface should always be live")
	}
}

func TestWriterZeroWidthFallsBackToMeasurement(t *testing.T) {
	s := NewWriter(&bytes.Buffer{}, 0)
	if s.Width() <= 0 {
		t.Errorf("Width = %d, want a positive measured fallback", s.Width())
	}
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{"unset", "", 80, 80},
		{"valid", "120", 80, 120},
		{"garbage", "wide", 80, 80},
		{"negative", "-5", 80, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ECHO_TRAY_TEST_COLS", tt.value)
			if got := envInt("ECHO_TRAY_TEST_COLS", tt.fallback); got != tt.want {
				t.Errorf("envInt = %d, want %d", got, tt.want)
			}
		})
	}
}
