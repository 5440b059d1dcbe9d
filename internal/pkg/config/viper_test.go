package config

import (
	"testing"
	"time"
)

const testYAML = `
app:
  api_key: "secret"
  server:
    cors: "http://localhost:3000,https://app.example.com"
otp:
  length: 6
  expiry_minutes: 5
rate_limit:
  window_minutes: 15
instrument:
  trace_sample_ratio: 0.25
  otlp_secure: true
  metric_interval_seconds: 30
`

func newConfig(t *testing.T) Config {
	t.Helper()

	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}
	t.Cleanup(func() { cfg.Close() })

	return cfg
}

func TestGetString(t *testing.T) {
	cfg := newConfig(t)

	if got := cfg.GetString("app.api_key"); got != "secret" {
		t.Fatalf("GetString() = %q", got)
	}
	if got := cfg.GetString("app.missing"); got != "" {
		t.Fatalf("GetString() missing = %q, want empty", got)
	}
}

func TestGetInt(t *testing.T) {
	cfg := newConfig(t)

	if got := cfg.GetInt("otp.length"); got != 6 {
		t.Fatalf("GetInt() = %d", got)
	}
}

func TestGetBool(t *testing.T) {
	cfg := newConfig(t)

	if !cfg.GetBool("instrument.otlp_secure") {
		t.Fatal("GetBool() = false, want true")
	}
}

func TestGetFloat64(t *testing.T) {
	cfg := newConfig(t)

	if got := cfg.GetFloat64("instrument.trace_sample_ratio"); got != 0.25 {
		t.Fatalf("GetFloat64() = %v", got)
	}
}

func TestGetArray(t *testing.T) {
	cfg := newConfig(t)

	got := cfg.GetArray("app.server.cors")
	if len(got) != 2 || got[0] != "http://localhost:3000" {
		t.Fatalf("GetArray() = %v", got)
	}
}

func TestDurations(t *testing.T) {
	cfg := newConfig(t)

	if got := cfg.GetMinute("otp.expiry_minutes"); got != 5*time.Minute {
		t.Fatalf("GetMinute() = %v", got)
	}
	if got := cfg.GetMinute("rate_limit.window_minutes"); got != 15*time.Minute {
		t.Fatalf("GetMinute() = %v", got)
	}
	if got := cfg.GetSecond("instrument.metric_interval_seconds"); got != 30*time.Second {
		t.Fatalf("GetSecond() = %v", got)
	}
}
