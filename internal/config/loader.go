package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadShadowlands loads Shadowlands configuration.
// Search order: customPath -> ~/.arcade/configs/shadowlands.yaml -> ./configs/shadowlands.yaml -> embedded default
func LoadShadowlands(customPath string) (ShadowlandsConfig, error) {
	return load("shadowlands.yaml", customPath, defaultShadowlandsYAML, DefaultShadowlandsConfig)
}

// LoadCastle loads Terror Castle configuration.
// Search order: customPath -> ~/.arcade/configs/castle.yaml -> ./configs/castle.yaml -> embedded default
func LoadCastle(customPath string) (CastleConfig, error) {
	return load("castle.yaml", customPath, defaultCastleYAML, DefaultCastleConfig)
}

// load resolves one game config. Files are decoded on top of the hardcoded
// defaults, so a user file only needs the keys it changes.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath, defaults); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", filename), defaults); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile[T any](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ParsePreset converts a flag value into a preset. An empty string means no
// preset: the configuration is used as loaded.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyShadowlandsPreset modifies the config based on a difficulty preset.
func ApplyShadowlandsPreset(cfg *ShadowlandsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Generator.GapPerLevel += 5
	}
}

// ApplyCastlePreset modifies the config based on a difficulty preset.
func ApplyCastlePreset(cfg *CastleConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed || preset == DifficultyEasy {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust economy and gem durability
	switch preset {
	case DifficultyEasy:
		cfg.Gem.Health = cfg.Gem.Health * 3 / 2
		scaleStartCoins(cfg, 3, 2)
	case DifficultyHard:
		cfg.Gem.Health = cfg.Gem.Health * 7 / 10
		scaleStartCoins(cfg, 7, 10)
	}
}

func scaleStartCoins(cfg *CastleConfig, num, den int) {
	for i := range cfg.Levels {
		cfg.Levels[i].StartCoins = cfg.Levels[i].StartCoins * num / den
	}
}

// ValidateFile parses a config file for the given game and validates it.
func ValidateFile(gameID, path string) error {
	switch gameID {
	case "shadowlands":
		cfg, err := LoadShadowlands(path)
		if err != nil {
			return err
		}
		return cfg.Validate()
	case "castle":
		cfg, err := LoadCastle(path)
		if err != nil {
			return err
		}
		return cfg.Validate()
	default:
		return fmt.Errorf("no configuration schema for game %q", gameID)
	}
}
