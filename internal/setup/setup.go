// Package setup bootstraps the dependencies shared by every analyzer:
// configuration, lexicon tables and logging.
package setup

import (
	"github.com/sentriq/modscan/internal/setup/config"
	"go.uber.org/zap"
)

// App bundles the core dependencies needed by the analytics engine.
// All fields are immutable after initialization and safe to share across
// concurrent callers.
type App struct {
	Config  *config.Config          // Thresholds, weights and rendering caps
	Lexicon *config.CompiledLexicon // Compiled keyword and pattern tables
	Logger  *zap.Logger             // Main application logger
}

// InitializeApp loads configuration and lexicon tables in order, wiring in
// the logger first so load issues are reported through it.
func InitializeApp(configPath string, debug bool) (*App, error) {
	logger, err := NewLogger(debug)
	if err != nil {
		return nil, err
	}

	cfg, configDir, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if configDir != "" {
		logger.Info("Loaded configuration", zap.String("dir", configDir))
	} else {
		logger.Info("No config file found, using defaults")
	}

	lexicon, err := config.LoadLexicon(configPath)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded lexicon tables",
		zap.Int("toxicityKeywords", len(lexicon.ToxicityKeywords)),
		zap.Int("harassmentPatterns", len(lexicon.Harassment)),
		zap.Int("spamPatterns", len(lexicon.Spam)))

	return &App{
		Config:  cfg,
		Lexicon: lexicon,
		Logger:  logger,
	}, nil
}

// NewTestApp builds an App around explicit config and lexicon values.
// Tests use this to substitute fixture tables without touching load paths.
func NewTestApp(cfg *config.Config, lexicon *config.CompiledLexicon) *App {
	return &App{
		Config:  cfg,
		Lexicon: lexicon,
		Logger:  zap.NewNop(),
	}
}
