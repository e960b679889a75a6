package core

import (
	"testing"
	"time"
)

func TestFrameDuration(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / DefaultTickRate},
		{-5, time.Second / DefaultTickRate},
	}

	for _, tt := range tests {
		cfg := RuntimeConfig{TickRate: tt.rate}
		if got := cfg.FrameDuration(); got != tt.want {
			t.Errorf("TickRate %d: FrameDuration() = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("DefaultConfig size = %dx%d, want 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != DefaultTickRate {
		t.Errorf("DefaultConfig tick rate = %d, want %d", cfg.TickRate, DefaultTickRate)
	}
}
