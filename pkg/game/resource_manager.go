package game

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/decker502/coinblock/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// BundledFont is the font path that resolves to the Go Regular face shipped with x/image.
const BundledFont = ""

// ResourceManager is responsible for centralized management of widget resources.
// It loads sound effects and fonts from the embedded asset tree and caches them,
// so each resource is decoded only once.
//
// Sound effects are cached as decoded 16-bit stereo PCM rather than as players:
// every playback creates a fresh player, which lets the jump and coin sounds
// overlap without rewinding each other.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. For the single-threaded game loop, no
// synchronization is needed.
type ResourceManager struct {
	audioContext  *audio.Context
	soundCache    map[string][]byte           // Decoded PCM: path -> bytes
	fontFaceCache map[string]*text.GoTextFace // Text faces: "path:size" -> face
	fontSources   map[string]*text.GoTextFaceSource

	config      *ResourceConfig   // Parsed YAML manifest
	resourceMap map[string]string // Resource ID -> file path
}

// NewResourceManager creates a ResourceManager.
// audioContext may be nil when only fonts and the manifest are needed (tests, tools).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:  audioContext,
		soundCache:    make(map[string][]byte),
		fontFaceCache: make(map[string]*text.GoTextFace),
		fontSources:   make(map[string]*text.GoTextFaceSource),
		resourceMap:   make(map[string]string),
	}
}

// LoadResourceConfig loads and parses the YAML resource manifest.
//
// Example:
//
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    log.Printf("Failed to load resource config: %v", err)
//	}
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	return rm.ParseResourceConfig(configPath, data)
}

// ParseResourceConfig parses manifest data and rebuilds the ID -> path mapping.
func (rm *ResourceManager) ParseResourceConfig(name string, data []byte) error {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", name, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs the mapping from resource IDs to full file paths.
//
//	SOUND_COIN -> assets/sounds/coin.mp3
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".mp3"
			}
			rm.resourceMap[sound.ID] = fullPath
		}
		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
		}
	}
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadSoundByID loads a sound effect by its manifest ID.
func (rm *ResourceManager) LoadSoundByID(resourceID string) ([]byte, error) {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("sound resource %s not found in manifest", resourceID)
	}
	return rm.LoadSound(path)
}

// LoadSound loads and decodes a sound effect to PCM, caching the result.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
func (rm *ResourceManager) LoadSound(path string) ([]byte, error) {
	if pcm, exists := rm.soundCache[path]; exists {
		return pcm, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("cannot decode %s: no audio context", path)
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)
	sampleRate := rm.audioContext.SampleRate()

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decoded, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}

	rm.soundCache[path] = pcm
	return pcm, nil
}

// StoreSound registers already decoded PCM under a path (used for synthesized fallbacks).
func (rm *ResourceManager) StoreSound(path string, pcm []byte) {
	rm.soundCache[path] = pcm
}

// AudioContext returns the audio context, or nil when audio is unavailable.
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// LoadFont creates a text face for the given font file and size.
// An empty path (BundledFont) selects Go Regular.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := rm.fontSources[path]
	if !ok {
		fontData := goregular.TTF
		if path != BundledFont {
			data, err := embedded.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
			}
			fontData = data
		}

		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
		}
		rm.fontSources[path] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}
