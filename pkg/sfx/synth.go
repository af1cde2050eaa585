// Package sfx 合成小部件使用的芯片音风格音效
//
// 音效资源缺失或解码失败时，AudioManager 用这里的合成结果兜底；
// 终端前端没有音频文件，直接通过 beep/speaker 播放这些音效。
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// 音效时长
const (
	JumpDuration     = 180 * time.Millisecond
	JumpAttack       = 5 * time.Millisecond
	JumpRelease      = 80 * time.Millisecond
	CoinNote1        = 80 * time.Millisecond
	CoinNote2        = 280 * time.Millisecond
	CoinAttack       = 5 * time.Millisecond
	CoinNote1Release = 40 * time.Millisecond
	CoinNote2Release = 200 * time.Millisecond
)

// Kind 可合成的音效种类
type Kind int

const (
	// KindJump 起跳：上扬的方波
	KindJump Kind = iota
	// KindCoin 顶中砖块：B5 → E6 两音
	KindCoin
)

// sweep 频率线性变化的方波振荡器
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// NewSquareSweep 创建从 from 滑到 to（Hz）的方波
func NewSquareSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope 给 s 加上起音和释音
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume 线性音量转换为 beep 的对数音量
// math.Log2(0) 为 -Inf，音量为 0 时直接静音
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Jump 合成起跳音效
func Jump(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewSquareSweep(260, 720, JumpDuration, rate)
	shaped := NewEnvelope(osc, JumpDuration, JumpAttack, JumpRelease, rate)
	return withVolume(shaped, volume)
}

// Coin 合成金币音效
func Coin(rate beep.SampleRate, volume float64) beep.Streamer {
	n1 := NewSquareSweep(987.77, 987.77, CoinNote1, rate)
	n1Shaped := NewEnvelope(n1, CoinNote1, CoinAttack, CoinNote1Release, rate)

	n2 := NewSquareSweep(1318.51, 1318.51, CoinNote2, rate)
	n2Shaped := NewEnvelope(n2, CoinNote2, CoinAttack, CoinNote2Release, rate)

	return withVolume(beep.Seq(n1Shaped, n2Shaped), volume)
}

// New 按种类合成音效
func New(kind Kind, rate beep.SampleRate, volume float64) beep.Streamer {
	if kind == KindJump {
		return Jump(rate, volume)
	}
	return Coin(rate, volume)
}

// KindForSound 把音效资源ID映射为合成种类
func KindForSound(id string) (Kind, bool) {
	switch id {
	case "SOUND_JUMP":
		return KindJump, true
	case "SOUND_COIN":
		return KindCoin, true
	}
	return 0, false
}
