package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// WidgetConfig 小部件配置，对应 data/widget.yaml
//
// 结构：
//
//	window:
//	  width: 480
//	  height: 360
//	  title: "Coin Block"
//	timing:
//	  hit_delay_ms: 400
//	  reset_delay_ms: 800
//	  pulse_ms: 500
//	  double_tap_ms: 300
//	messages:
//	  path: assets/data/messages.json
//	audio:
//	  volume: 0.5
type WidgetConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Timing   TimingConfig   `yaml:"timing"`
	Messages MessagesConfig `yaml:"messages"`
	Audio    AudioConfig    `yaml:"audio"`
}

// WindowConfig 窗口与逻辑屏幕尺寸
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TimingConfig 跳跃序列和输入过滤的时长（毫秒）
type TimingConfig struct {
	HitDelayMs   int `yaml:"hit_delay_ms"`   // 起跳到顶中砖块
	ResetDelayMs int `yaml:"reset_delay_ms"` // 起跳到落地复位
	PulseMs      int `yaml:"pulse_ms"`       // 砖块脉冲持续时间
	DoubleTapMs  int `yaml:"double_tap_ms"`  // 双击抑制窗口
}

// MessagesConfig 消息文件位置
type MessagesConfig struct {
	Path string `yaml:"path"` // 嵌入资源路径、本地文件路径或 http(s) URL
}

// AudioConfig 默认音量
type AudioConfig struct {
	Volume float64 `yaml:"volume"` // 0.0 ~ 1.0
}

// DefaultWidgetConfig 返回默认配置
func DefaultWidgetConfig() *WidgetConfig {
	return &WidgetConfig{
		Window: WindowConfig{
			Width:  WidgetScreenWidth,
			Height: WidgetScreenHeight,
			Title:  "Coin Block",
		},
		Timing: TimingConfig{
			HitDelayMs:   400,
			ResetDelayMs: 800,
			PulseMs:      500,
			DoubleTapMs:  300,
		},
		Messages: MessagesConfig{
			Path: "assets/data/messages.json",
		},
		Audio: AudioConfig{
			Volume: 0.5,
		},
	}
}

// ParseWidgetConfig 解析 YAML 配置，未出现的字段保留默认值
func ParseWidgetConfig(data []byte) (*WidgetConfig, error) {
	cfg := DefaultWidgetConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse widget config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 检查配置取值
func (c *WidgetConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Timing.HitDelayMs < 0 || c.Timing.ResetDelayMs < 0 || c.Timing.PulseMs < 0 || c.Timing.DoubleTapMs < 0 {
		return fmt.Errorf("timing values must not be negative")
	}
	if c.Timing.ResetDelayMs < c.Timing.HitDelayMs {
		return fmt.Errorf("reset_delay_ms (%d) must not be shorter than hit_delay_ms (%d)",
			c.Timing.ResetDelayMs, c.Timing.HitDelayMs)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %.2f out of range [0, 1]", c.Audio.Volume)
	}
	if c.Messages.Path == "" {
		return fmt.Errorf("messages path must not be empty")
	}
	return nil
}

// HitDelay 起跳到顶中砖块的时长
func (t TimingConfig) HitDelay() time.Duration { return ms(t.HitDelayMs) }

// ResetDelay 起跳到落地复位的时长
func (t TimingConfig) ResetDelay() time.Duration { return ms(t.ResetDelayMs) }

// Pulse 砖块脉冲持续时间
func (t TimingConfig) Pulse() time.Duration { return ms(t.PulseMs) }

// DoubleTap 双击抑制窗口
func (t TimingConfig) DoubleTap() time.Duration { return ms(t.DoubleTapMs) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
