package game

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/decker502/coinblock/pkg/embedded"
)

const testManifest = `
version: "1.0"
base_path: assets
groups:
  init:
    sounds:
      - id: SOUND_JUMP
        path: sounds/jump.mp3
      - id: SOUND_COIN
        path: sounds/coin
      - id: SOUND_MISSING
        path: sounds/missing.wav
`

func initTestAssets(t *testing.T) {
	t.Helper()
	embedded.Init(fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testManifest)},
		"assets/sounds/missing.wav":    {Data: []byte("RIFF")},
	}, fstest.MapFS{})
}

func TestLoadResourceConfig(t *testing.T) {
	initTestAssets(t)
	rm := NewResourceManager(nil)

	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig error: %v", err)
	}

	cases := map[string]string{
		"SOUND_JUMP": "assets/sounds/jump.mp3",
		"SOUND_COIN": "assets/sounds/coin.mp3", // 无扩展名时默认 .mp3
	}
	for id, want := range cases {
		got, ok := rm.ResolvePath(id)
		if !ok || got != want {
			t.Errorf("ResolvePath(%s): got %q (ok=%v), want %q", id, got, ok, want)
		}
	}
	if _, ok := rm.ResolvePath("SOUND_UNKNOWN"); ok {
		t.Error("Unknown ID should not resolve")
	}
}

func TestParseResourceConfigInvalid(t *testing.T) {
	rm := NewResourceManager(nil)
	if err := rm.ParseResourceConfig("bad.yaml", []byte("groups: [")); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadSoundWithoutAudioContext(t *testing.T) {
	initTestAssets(t)
	rm := NewResourceManager(nil)
	rm.LoadResourceConfig("assets/config/resources.yaml")

	if _, err := rm.LoadSoundByID("SOUND_JUMP"); err == nil {
		t.Error("Expected error without audio context")
	}
	if _, err := rm.LoadSoundByID("SOUND_UNKNOWN"); err == nil {
		t.Error("Expected error for unknown sound")
	}

	// 已缓存的 PCM 不需要音频上下文
	rm.StoreSound("assets/sounds/jump.mp3", []byte{0, 0, 0, 0})
	pcm, err := rm.LoadSoundByID("SOUND_JUMP")
	if err != nil || len(pcm) != 4 {
		t.Errorf("Cached sound: got %v, %v", pcm, err)
	}
}

func TestLoadBundledFont(t *testing.T) {
	rm := NewResourceManager(nil)

	face, err := rm.LoadFont(BundledFont, 14)
	if err != nil {
		t.Fatalf("LoadFont error: %v", err)
	}
	if face.Size != 14 {
		t.Errorf("Font size: got %v, want 14", face.Size)
	}

	again, _ := rm.LoadFont(BundledFont, 14)
	if again != face {
		t.Error("Font face should be cached")
	}

	bigger, _ := rm.LoadFont(BundledFont, 18)
	if bigger.Source != face.Source {
		t.Error("Font source should be shared between sizes")
	}
}

func TestAudioManagerWithoutContext(t *testing.T) {
	rm := NewResourceManager(nil)
	am := NewAudioManager(rm, nil)

	if err := am.PlaySound("SOUND_COIN"); !errors.Is(err, ErrAudioUnavailable) {
		t.Errorf("Expected ErrAudioUnavailable, got %v", err)
	}

	sm := NewSettingsManager(nil, nil)
	sm.SetSoundEnabled(false)
	muted := NewAudioManager(rm, sm)
	if err := muted.PlaySound("SOUND_COIN"); err != nil {
		t.Errorf("Muted playback should be a silent no-op, got %v", err)
	}
}
