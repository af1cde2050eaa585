package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/coinblock/pkg/sfx"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ErrAudioUnavailable 没有可用的音频上下文
var ErrAudioUnavailable = errors.New("audio not available")

// AudioManager 音效管理器
// 职责：
//   - 按资源ID播放一次性音效（跳跃、金币）
//   - 从 SettingsManager 读取开关和音量
//   - 音效文件缺失或解码失败时使用 pkg/sfx 合成的音效兜底
//
// 实现 widget.SoundPlayer 接口。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager // 可为 nil
	sounds          map[string][]byte
	active          []*audio.Player // 播放中的播放器，防止提前被回收
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音效）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		sounds:          make(map[string][]byte),
	}
}

// PlaySound 播放一次音效，不等待播放结束
// 音效被关闭时直接返回 nil
func (am *AudioManager) PlaySound(soundID string) error {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return nil
	}

	ctx := am.resourceManager.AudioContext()
	if ctx == nil {
		return ErrAudioUnavailable
	}

	pcm, err := am.getSound(soundID)
	if err != nil {
		return err
	}

	am.pruneFinished()

	player := ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(am.getSoundVolume())
	player.Play()
	am.active = append(am.active, player)
	return nil
}

// PreloadSounds 预加载音效，避免首次播放时的解码延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if _, err := am.getSound(soundID); err == nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}

// SetSoundVolume 设置音效音量并应用到播放中的音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.active {
		player.SetVolume(am.getSoundVolume())
	}
}

// getSound 获取音效 PCM：先查缓存，再按资源ID加载，最后合成兜底
func (am *AudioManager) getSound(soundID string) ([]byte, error) {
	if pcm, exists := am.sounds[soundID]; exists {
		return pcm, nil
	}
	if am.resourceManager.AudioContext() == nil {
		return nil, ErrAudioUnavailable
	}

	pcm, err := am.resourceManager.LoadSoundByID(soundID)
	if err != nil {
		kind, ok := sfx.KindForSound(soundID)
		if !ok {
			return nil, fmt.Errorf("sound %s unavailable: %w", soundID, err)
		}

		log.Printf("[AudioManager] Warning: %v (using synthesized sound)", err)
		rate := beep.SampleRate(am.resourceManager.AudioContext().SampleRate())
		pcm = sfx.RenderPCM(sfx.New(kind, rate, 1))
	}

	am.sounds[soundID] = pcm
	return pcm, nil
}

// pruneFinished 移除已播放完的播放器
func (am *AudioManager) pruneFinished() {
	kept := am.active[:0]
	for _, player := range am.active {
		if player.IsPlaying() {
			kept = append(kept, player)
			continue
		}
		player.Close()
	}
	am.active = kept
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.5 // 默认值
}
