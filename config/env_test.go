package config

import (
	"testing"
	"time"
)

func TestGetEnvAsString(t *testing.T) {
	if got := getEnvAsString("ENV_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}

	t.Setenv("ENV_TEST_STRING", "value")
	if got := getEnvAsString("ENV_TEST_STRING", "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("ENV_TEST_INT", "42")
	if got := getEnvAsInt("ENV_TEST_INT", 7); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	t.Setenv("ENV_TEST_INT", "not-a-number")
	if got := getEnvAsInt("ENV_TEST_INT", 7); got != 7 {
		t.Errorf("expected fallback 7 on parse failure, got %d", got)
	}
}

func TestGetEnvAsTimeDuration(t *testing.T) {
	t.Setenv("ENV_TEST_DURATION", "15")
	if got := getEnvAsTimeDuration("ENV_TEST_DURATION", time.Minute); got != 15*time.Second {
		t.Errorf("expected 15s, got %v", got)
	}

	if got := getEnvAsTimeDuration("ENV_TEST_DURATION_MISSING", time.Minute); got != time.Minute {
		t.Errorf("expected fallback 1m, got %v", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("ENV_TEST_BOOL", "true")
	if !getEnvAsBool("ENV_TEST_BOOL", false) {
		t.Error("expected true")
	}

	t.Setenv("ENV_TEST_BOOL", "garbage")
	if getEnvAsBool("ENV_TEST_BOOL", false) {
		t.Error("expected fallback false on parse failure")
	}
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("ENV_TEST_SLICE", " a, b ,,c ")
	got := getEnvAsSlice("ENV_TEST_SLICE", nil)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
