package config

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"github.com/bytedance/sonic"
	"github.com/tailscale/hujson"
)

//go:embed lexicon.jsonc
var defaultLexicon []byte

// PurposeRule classifies a URL into a purpose category when any of its
// markers occurs in the URL's domain or path. Rules are evaluated in order;
// the first match wins.
type PurposeRule struct {
	Category    string   `json:"category"`
	Purpose     string   `json:"purpose"`
	Description string   `json:"description"`
	Relevance   float64  `json:"relevance"`
	Markers     []string `json:"markers"`
}

// Lexicon holds the keyword and pattern tables used by classification.
// Tables are data rather than code so tests can substitute fixtures and
// deployments can version their own lists.
type Lexicon struct {
	ToxicityKeywords     []string      `json:"toxicityKeywords"`
	HarassmentPatterns   []string      `json:"harassmentPatterns"`
	SpamPatterns         []string      `json:"spamPatterns"`
	MaliciousDomains     []string      `json:"maliciousDomains"`
	SafeDomains          []string      `json:"safeDomains"`
	SuspiciousPatterns   []string      `json:"suspiciousPatterns"`
	InviteHosts          []string      `json:"inviteHosts"`
	ExecutableExtensions []string      `json:"executableExtensions"`
	PurposeRules         []PurposeRule `json:"purposeRules"`
}

// CompiledLexicon is a Lexicon with every regex table compiled. Compiled
// tables are immutable after load and safe to share across concurrent
// callers without locking.
type CompiledLexicon struct {
	*Lexicon

	Harassment []*regexp.Regexp
	Spam       []*regexp.Regexp
	Suspicious []*regexp.Regexp
}

// Compile compiles all regex tables, reporting the first invalid pattern.
func (l *Lexicon) Compile() (*CompiledLexicon, error) {
	compiled := &CompiledLexicon{Lexicon: l}

	tables := []struct {
		name     string
		patterns []string
		out      *[]*regexp.Regexp
	}{
		{"harassmentPatterns", l.HarassmentPatterns, &compiled.Harassment},
		{"spamPatterns", l.SpamPatterns, &compiled.Spam},
		{"suspiciousPatterns", l.SuspiciousPatterns, &compiled.Suspicious},
	}

	for _, table := range tables {
		for _, pattern := range table.patterns {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q in %s: %w", pattern, table.name, err)
			}

			*table.out = append(*table.out, re)
		}
	}

	return compiled, nil
}

// LoadLexicon loads the lexicon tables from the first available search path,
// falling back to the embedded defaults when no file exists.
func LoadLexicon(configPath string) (*CompiledLexicon, error) {
	for _, dir := range searchPaths(configPath) {
		path := dir + "/lexicon.jsonc"
		if _, err := os.Stat(path); err != nil {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
		}

		return parseLexicon(data, path)
	}

	return parseLexicon(defaultLexicon, "embedded default")
}

// parseLexicon standardizes JSONC input, decodes it and compiles the tables.
func parseLexicon(data []byte, source string) (*CompiledLexicon, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to standardize lexicon %s: %w", source, err)
	}

	var lexicon Lexicon
	if err := sonic.Unmarshal(standardized, &lexicon); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon %s: %w", source, err)
	}

	compiled, err := lexicon.Compile()
	if err != nil {
		return nil, fmt.Errorf("failed to compile lexicon %s: %w", source, err)
	}

	return compiled, nil
}
