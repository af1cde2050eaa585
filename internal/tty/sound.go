package tty

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/decker502/coinblock/pkg/sfx"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate 终端前端的输出采样率
const SampleRate = beep.SampleRate(44100)

// SpeakerPlayer 通过系统扬声器播放合成音效，实现 widget.SoundPlayer
type SpeakerPlayer struct {
	mu     sync.Mutex
	volume float64
	muted  bool
	ready  bool
}

// NewSpeakerPlayer 初始化扬声器
// 初始化失败时返回错误，调用方可以改用静音运行
func NewSpeakerPlayer(volume float64) (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &SpeakerPlayer{volume: volume, ready: true}, nil
}

// PlaySound 实现 widget.SoundPlayer
func (p *SpeakerPlayer) PlaySound(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || !p.ready {
		return nil
	}
	kind, ok := sfx.KindForSound(id)
	if !ok {
		return fmt.Errorf("unknown sound %s", id)
	}
	speaker.Play(sfx.New(kind, SampleRate, p.volume))
	return nil
}

// ToggleMute 切换静音，返回切换后的状态
func (p *SpeakerPlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	log.Printf("[SpeakerPlayer] muted=%v", p.muted)
	return p.muted
}

// IsMuted 返回是否静音
func (p *SpeakerPlayer) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close 停止播放并释放扬声器
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
