package config

import (
	"os"
	"testing"
	"time"
)

// TestDefaultWidgetConfig 测试默认配置
func TestDefaultWidgetConfig(t *testing.T) {
	cfg := DefaultWidgetConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
	if cfg.Timing.HitDelay() != 400*time.Millisecond {
		t.Errorf("HitDelay: got %v, want 400ms", cfg.Timing.HitDelay())
	}
	if cfg.Timing.ResetDelay() != 800*time.Millisecond {
		t.Errorf("ResetDelay: got %v, want 800ms", cfg.Timing.ResetDelay())
	}
	if cfg.Timing.Pulse() != 500*time.Millisecond {
		t.Errorf("Pulse: got %v, want 500ms", cfg.Timing.Pulse())
	}
	if cfg.Timing.DoubleTap() != 300*time.Millisecond {
		t.Errorf("DoubleTap: got %v, want 300ms", cfg.Timing.DoubleTap())
	}
	if cfg.Audio.Volume != 0.5 {
		t.Errorf("Volume: got %v, want 0.5", cfg.Audio.Volume)
	}
	if cfg.Messages.Path != "assets/data/messages.json" {
		t.Errorf("Messages path: got %q", cfg.Messages.Path)
	}
}

// TestParseWidgetConfigPartial 测试部分覆盖时保留默认值
func TestParseWidgetConfigPartial(t *testing.T) {
	data := []byte(`
window:
  title: "Propuestas"
timing:
  pulse_ms: 250
audio:
  volume: 0.8
`)

	cfg, err := ParseWidgetConfig(data)
	if err != nil {
		t.Fatalf("ParseWidgetConfig error: %v", err)
	}
	if cfg.Window.Title != "Propuestas" {
		t.Errorf("Title: got %q", cfg.Window.Title)
	}
	if cfg.Window.Width != WidgetScreenWidth {
		t.Errorf("Width should keep default, got %d", cfg.Window.Width)
	}
	if cfg.Timing.Pulse() != 250*time.Millisecond {
		t.Errorf("Pulse: got %v", cfg.Timing.Pulse())
	}
	if cfg.Timing.HitDelayMs != 400 {
		t.Errorf("HitDelayMs should keep default, got %d", cfg.Timing.HitDelayMs)
	}
	if cfg.Audio.Volume != 0.8 {
		t.Errorf("Volume: got %v", cfg.Audio.Volume)
	}
}

// TestParseWidgetConfigInvalid 测试非法配置
func TestParseWidgetConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":       "window: [",
		"volume":       "audio:\n  volume: 2\n",
		"negative":     "timing:\n  pulse_ms: -1\n",
		"reset_order":  "timing:\n  hit_delay_ms: 900\n  reset_delay_ms: 800\n",
		"window":       "window:\n  width: 0\n",
		"empty_source": "messages:\n  path: \"\"\n",
	}

	for name, data := range cases {
		if _, err := ParseWidgetConfig([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

// TestBundledWidgetConfig 测试仓库自带的 data/widget.yaml
func TestBundledWidgetConfig(t *testing.T) {
	data, err := os.ReadFile("../../data/widget.yaml")
	if err != nil {
		t.Skipf("data/widget.yaml not available: %v", err)
	}

	cfg, err := ParseWidgetConfig(data)
	if err != nil {
		t.Fatalf("Bundled config invalid: %v", err)
	}
	if cfg.Timing.HitDelay() != 400*time.Millisecond || cfg.Timing.ResetDelay() != 800*time.Millisecond {
		t.Errorf("Bundled timing mismatch: %+v", cfg.Timing)
	}
}
