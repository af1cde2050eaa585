package game

// ResourceConfig represents the top-level resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  group_name:
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Manifest version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that are loaded together.
type ResourceGroup struct {
	Sounds []SoundResource `yaml:"sounds"` // Sound effects in this group
	Fonts  []FontResource  `yaml:"fonts"`  // Fonts in this group
}

// SoundResource represents a single sound effect definition.
//
// Example:
//   - id: SOUND_COIN
//     path: sounds/coin.mp3
type SoundResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// FontResource represents a single font definition.
type FontResource struct {
	ID   string `yaml:"id"`   // Resource ID (unique identifier)
	Path string `yaml:"path"` // Relative file path from base_path
}

// buildFullPath joins the base path and a resource's relative path.
//
// Example:
//
//	buildFullPath("assets", "sounds/coin.mp3") -> "assets/sounds/coin.mp3"
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
