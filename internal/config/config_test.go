package config

import "testing"

// TestLoadDefaults verifies Load falls back to sane defaults when no
// config file is present (the test working directory has none).
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Mode != "release" {
		t.Errorf("Mode = %q, want release", cfg.Mode)
	}
	if cfg.ReadLimit != 32768 {
		t.Errorf("ReadLimit = %d, want 32768", cfg.ReadLimit)
	}
	if cfg.SendBuffer != 32 {
		t.Errorf("SendBuffer = %d, want 32", cfg.SendBuffer)
	}
	if cfg.FrameRate != 0 {
		t.Errorf("FrameRate = %d, want 0 (disabled)", cfg.FrameRate)
	}
	if cfg.PingPeriod.Seconds() != 54 {
		t.Errorf("PingPeriod = %s, want 54s", cfg.PingPeriod)
	}
}
