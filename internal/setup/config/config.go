package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigVersionMissing  = errors.New("config file is missing version field")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
	ErrInvalidMatchStrategy  = errors.New("matching strategy must be \"exact\" or \"contains\"")
)

// CurrentVersion is the config schema version this build understands.
const CurrentVersion = 1

// Matching strategies for attributing messages to a user identifier.
const (
	// MatchExact attributes a message only when the author field equals the
	// user identifier.
	MatchExact = "exact"
	// MatchContains also attributes a message when the author field contains
	// the user identifier. This can misattribute messages between users whose
	// identifiers are substrings of one another; it is kept as the default
	// because existing windows were produced under this rule.
	MatchContains = "contains"
)

// Config holds every tunable threshold and weight of the analytics engine.
type Config struct {
	// Version of the config schema.
	Version  int      `koanf:"version"`
	Matching Matching `koanf:"matching"`
	Toxicity Toxicity `koanf:"toxicity"`
	Behavior Behavior `koanf:"behavior"`
	Risk     Risk     `koanf:"risk"`
	Action   Action   `koanf:"action"`
	Report   Report   `koanf:"report"`
}

// Matching controls how messages are attributed to users.
type Matching struct {
	Strategy string `koanf:"strategy"`
}

// Toxicity controls the per-message toxicity scoring thresholds.
type Toxicity struct {
	// Score above which a toxicity violation is emitted.
	FlagThreshold float64 `koanf:"flag_threshold"`
	// Score above which the violation severity is raised to high.
	HighSeverityThreshold float64 `koanf:"high_severity_threshold"`
}

// Behavior controls the frequency-based pattern detectors.
type Behavior struct {
	// Ratio of profane messages above which the pattern is emitted.
	ProfanityRatio float64 `koanf:"profanity_ratio"`
	// Number of consecutive messages forming one posting window.
	RapidWindowSize int `koanf:"rapid_window_size"`
	// Window span in seconds under which a window counts as a burst.
	RapidWindowSeconds int `koanf:"rapid_window_seconds"`
	// Burst count above which the rapid posting pattern is emitted.
	RapidBurstThreshold int `koanf:"rapid_burst_threshold"`
	// Maximum example texts attached to a pattern.
	MaxExamples int `koanf:"max_examples"`
}

// Risk controls the weighted score combination.
type Risk struct {
	CriticalWeight int `koanf:"critical_weight"`
	HighWeight     int `koanf:"high_weight"`
	MediumWeight   int `koanf:"medium_weight"`
	LowWeight      int `koanf:"low_weight"`
	// Multiplier applied to each behavior pattern confidence.
	PatternWeight float64 `koanf:"pattern_weight"`
	// Activity adjustments.
	HighVolumeBonus     int     `koanf:"high_volume_bonus"`
	HighVolumeThreshold int     `koanf:"high_volume_threshold"`
	ShortMessageBonus   int     `koanf:"short_message_bonus"`
	ShortMessageLength  float64 `koanf:"short_message_length"`
	LowReactionBonus    int     `koanf:"low_reaction_bonus"`
	LowReactionRatio    float64 `koanf:"low_reaction_ratio"`
}

// Action controls the ordered threshold rules mapping scores to actions.
type Action struct {
	BanScore  int `koanf:"ban_score"`
	MuteScore int `koanf:"mute_score"`
	WarnScore int `koanf:"warn_score"`
	// Count of high-severity violations that triggers a mute on its own.
	MuteHighViolations int `koanf:"mute_high_violations"`
	MonitorScore       int `koanf:"monitor_score"`
}

// Report controls aggregation thresholds and rendering caps.
type Report struct {
	// Risk score at or above which a profile counts as high risk.
	HighRiskScore int `koanf:"high_risk_score"`
	// Risk score at or above which a critical issue is raised.
	CriticalRiskScore int `koanf:"critical_risk_score"`
	// Deletion-candidate confidence above which a channel issue is raised.
	DeletionConfidence float64 `koanf:"deletion_confidence"`
	// Days since joining under which a user counts as new.
	RecentJoinDays int `koanf:"recent_join_days"`
	// Rendering caps for the AI handoff text.
	MaxIssues          int `koanf:"max_issues"`
	MaxRecommendations int `koanf:"max_recommendations"`
	MaxDetailEntries   int `koanf:"max_detail_entries"`
}

// DefaultConfig returns the configuration used when no config file is found.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentVersion,
		Matching: Matching{Strategy: MatchContains},
		Toxicity: Toxicity{
			FlagThreshold:         0.6,
			HighSeverityThreshold: 0.8,
		},
		Behavior: Behavior{
			ProfanityRatio:      0.3,
			RapidWindowSize:     5,
			RapidWindowSeconds:  60,
			RapidBurstThreshold: 3,
			MaxExamples:         3,
		},
		Risk: Risk{
			CriticalWeight:      25,
			HighWeight:          15,
			MediumWeight:        8,
			LowWeight:           3,
			PatternWeight:       20,
			HighVolumeBonus:     10,
			HighVolumeThreshold: 100,
			ShortMessageBonus:   5,
			ShortMessageLength:  10,
			LowReactionBonus:    8,
			LowReactionRatio:    0.1,
		},
		Action: Action{
			BanScore:           85,
			MuteScore:          70,
			WarnScore:          50,
			MuteHighViolations: 3,
			MonitorScore:       30,
		},
		Report: Report{
			HighRiskScore:      60,
			CriticalRiskScore:  80,
			DeletionConfidence: 0.8,
			RecentJoinDays:     30,
			MaxIssues:          5,
			MaxRecommendations: 3,
			MaxDetailEntries:   3,
		},
	}
}

// LoadConfig loads the configuration from the first available search path,
// falling back to defaults when no file exists. The returned string is the
// directory the config was loaded from, or "" for defaults.
func LoadConfig(configPath string) (*Config, string, error) {
	for _, dir := range searchPaths(configPath) {
		path := dir + "/modscan.toml"
		if _, err := os.Stat(path); err != nil {
			continue
		}

		cfg, err := loadConfigFromPath(path)
		if err != nil {
			return nil, "", err
		}

		return cfg, dir, nil
	}

	return DefaultConfig(), "", nil
}

// Validate checks config values the loader cannot range-check.
func (c *Config) Validate() error {
	if c.Matching.Strategy != MatchExact && c.Matching.Strategy != MatchContains {
		return fmt.Errorf("%w: %q", ErrInvalidMatchStrategy, c.Matching.Strategy)
	}

	return nil
}

// loadConfigFromPath loads and verifies a config file over the defaults.
func loadConfigFromPath(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	if !k.Exists("version") {
		return nil, fmt.Errorf("%w: %s", ErrConfigVersionMissing, path)
	}

	if version := k.Int("version"); version != CurrentVersion {
		return nil, fmt.Errorf("%w: expected %d, found %d", ErrConfigVersionMismatch, CurrentVersion, version)
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// searchPaths lists config directories in priority order.
func searchPaths(configPath string) []string {
	paths := make([]string, 0, 6)
	if configPath != "" {
		paths = append(paths, configPath)
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, homeDir+"/.modscan/config")
	}

	return append(paths,
		".modscan",
		"/etc/modscan/config",
		"config",
		".",
	)
}
