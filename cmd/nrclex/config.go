package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/affect"
)

const (
	dfltLexicon    = affect.NRCLex
	dfltFormat     = "text"
	dfltLogLevel   = "warn"
	dfltLanguage   = affect.English
	dfltLemmatizer = "morphy"
)

// Conf is the command configuration. Values come from the YAML file, then
// the environment (optionally seeded from .env), then flags.
type Conf struct {
	Lexicon     string          `yaml:"lexicon"`
	Format      string          `yaml:"format"`
	LogLevel    string          `yaml:"logLevel"`
	Lemmatizer  string          `yaml:"lemmatizer"`
	StopWords   bool            `yaml:"stopWords"`
	Language    affect.Language `yaml:"language"`
	CaseFolding *bool           `yaml:"caseFolding"`
}

// LoadConfig reads a YAML config from path. An empty path yields an empty
// config.
func LoadConfig(path string) (*Conf, error) {
	var conf Conf
	if path == "" {
		return &conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &conf, nil
}

// ApplyEnv overrides conf with NRCLEX_* variables. A .env file in envFile,
// when present, seeds the environment first without overriding it.
func ApplyEnv(conf *Conf, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	if v := os.Getenv("NRCLEX_LEXICON"); v != "" {
		conf.Lexicon = v
	}
	if v := os.Getenv("NRCLEX_FORMAT"); v != "" {
		conf.Format = v
	}
	if v := os.Getenv("NRCLEX_LOG_LEVEL"); v != "" {
		conf.LogLevel = v
	}
	if v := os.Getenv("NRCLEX_LEMMATIZER"); v != "" {
		conf.Lemmatizer = v
	}
	if v := os.Getenv("NRCLEX_STOP_WORDS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid NRCLEX_STOP_WORDS: %w", err)
		}
		conf.StopWords = b
	}
	return nil
}

// ValidateAndDefaults fills unset values and rejects invalid ones.
func ValidateAndDefaults(conf *Conf) error {
	if conf.Lexicon == "" {
		conf.Lexicon = dfltLexicon
		log.Debug().Msgf("lexicon not specified, using default: %s", dfltLexicon)
	}
	if conf.Format == "" {
		conf.Format = dfltFormat
	}
	if conf.Format != "text" && conf.Format != "json" {
		return fmt.Errorf("unknown output format %q", conf.Format)
	}
	if conf.LogLevel == "" {
		conf.LogLevel = dfltLogLevel
	}
	if _, err := zerolog.ParseLevel(conf.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if conf.Lemmatizer == "" {
		conf.Lemmatizer = dfltLemmatizer
	}
	switch conf.Lemmatizer {
	case "morphy", "stem", "none":
	default:
		return fmt.Errorf("unknown lemmatizer %q", conf.Lemmatizer)
	}
	if conf.Language == "" {
		conf.Language = dfltLanguage
	}
	if conf.StopWords && !affect.IsStopWordLanguage(conf.Language) {
		return affect.FormatLanguageError(conf.Language)
	}
	if conf.CaseFolding == nil {
		folding := true
		conf.CaseFolding = &folding
	}
	return nil
}

// docOpts translates the config into text pipeline options for lex.
func (conf *Conf) docOpts(lex *affect.Lexicon) []affect.DocOpt {
	opts := []affect.DocOpt{affect.WithCaseFolding(*conf.CaseFolding)}
	if conf.StopWords {
		opts = append(opts, affect.WithStopWordRemoval(conf.Language))
	}
	switch conf.Lemmatizer {
	case "morphy":
		opts = append(opts, affect.UsingLemmatizer(affect.NewMorphyLemmatizer(lex)))
	case "stem":
		opts = append(opts, affect.UsingLemmatizer(affect.NewStemLemmatizer(lex.Words())))
	}
	return opts
}
