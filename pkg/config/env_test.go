package config_test

import (
	"testing"
	"time"

	"github.com/2003aryan/crisp-ai/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := config.GetEnvString("TEST_STRING", "default"); got != "value" {
		t.Errorf("got %q, want %q", got, "value")
	}
	if got := config.GetEnvString("TEST_STRING_MISSING", "default"); got != "default" {
		t.Errorf("got %q, want default", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := config.GetEnvInt("TEST_INT", 1); got != 42 {
		t.Errorf("got %d, want 42", got)
	}

	t.Setenv("TEST_INT_BAD", "not-a-number")
	if got := config.GetEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("invalid value should fall back to default, got %d", got)
	}

	if got := config.GetEnvInt("TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("missing value should fall back to default, got %d", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true}, {"true", true}, {"True", true},
		{"0", false}, {"false", false}, {"F", false},
	}
	for _, tt := range tests {
		t.Setenv("TEST_BOOL", tt.value)
		if got := config.GetEnvBool("TEST_BOOL", !tt.want); got != tt.want {
			t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	t.Setenv("TEST_BOOL", "maybe")
	if got := config.GetEnvBool("TEST_BOOL", true); got != true {
		t.Error("invalid value should fall back to default")
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	if got := config.GetEnvDuration("TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("got %v, want 90s", got)
	}

	t.Setenv("TEST_DURATION_BAD", "ninety")
	if got := config.GetEnvDuration("TEST_DURATION_BAD", time.Minute); got != time.Minute {
		t.Errorf("invalid value should fall back to default, got %v", got)
	}
}
