// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/util"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CHATWIDGET_"

// =============================================================================
// CONFIG TYPES
// =============================================================================

// Config is the complete widget configuration.
type Config struct {
	Backend    BackendConfig    `toml:"backend" json:"backend" envPrefix:"BACKEND_"`
	Widget     WidgetConfig     `toml:"widget" json:"widget" envPrefix:"WIDGET_"`
	Storage    StorageConfig    `toml:"storage" json:"storage" envPrefix:"STORAGE_"`
	Transcript TranscriptConfig `toml:"transcript" json:"transcript" envPrefix:"TRANSCRIPT_"`
	Log        LogConfig        `toml:"log" json:"log" envPrefix:"LOG_"`
	Stub       StubConfig       `toml:"stub" json:"stub" envPrefix:"STUB_"`
}

// BackendConfig locates the question-answering service.
type BackendConfig struct {
	BaseURL string `toml:"base_url" json:"base_url" env:"URL" validate:"required,url"`
	// Timeout per request; zero disables the client-side timeout.
	Timeout   time.Duration `toml:"timeout" json:"timeout" env:"TIMEOUT" validate:"gte=0"`
	UserAgent string        `toml:"user_agent" json:"user_agent" env:"USER_AGENT"`
}

// WidgetConfig shapes the conversation behaviour.
type WidgetConfig struct {
	Organization      string `toml:"organization" json:"organization" env:"ORGANIZATION" validate:"required,max=100"`
	ContactPhrase     string `toml:"contact_phrase" json:"contact_phrase" env:"CONTACT_PHRASE"`
	HistoryMode       string `toml:"history_mode" json:"history_mode" env:"HISTORY_MODE" validate:"oneof=prior inclusive"`
	EmptySuggestions  string `toml:"empty_suggestions" json:"empty_suggestions" env:"EMPTY_SUGGESTIONS" validate:"oneof=clear preserve"`
	FallbackPrompt    string `toml:"fallback_prompt" json:"fallback_prompt" env:"FALLBACK_PROMPT"`
	ReplayHistory     bool   `toml:"replay_history" json:"replay_history" env:"REPLAY_HISTORY"`
	OverlapPolicy     string `toml:"overlap_policy" json:"overlap_policy" env:"OVERLAP_POLICY" validate:"oneof=allow reject"`
	EndSessionOnClose bool   `toml:"end_session_on_close" json:"end_session_on_close" env:"END_SESSION_ON_CLOSE"`
}

// StorageConfig controls the local state file.
type StorageConfig struct {
	Path           string `toml:"path" json:"path" env:"PATH" validate:"required"`
	PersistCookies bool   `toml:"persist_cookies" json:"persist_cookies" env:"PERSIST_COOKIES"`
}

// TranscriptConfig controls where downloaded transcripts land.
type TranscriptConfig struct {
	Dir           string `toml:"dir" json:"dir" env:"DIR" validate:"required"`
	OpenAfterSave bool   `toml:"open_after_save" json:"open_after_save" env:"OPEN_AFTER_SAVE"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level" json:"level" env:"LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
	// File receives logs while the TUI owns the terminal.
	File string `toml:"file" json:"file" env:"FILE"`
}

// StubConfig configures the bundled reference backend.
type StubConfig struct {
	Addr string `toml:"addr" json:"addr" env:"ADDR" validate:"required,hostname_port"`
	// RateLimit is requests per second per client IP; zero disables it.
	RateLimit float64  `toml:"rate_limit" json:"rate_limit" env:"RATE_LIMIT" validate:"gte=0"`
	Burst     int      `toml:"burst" json:"burst" env:"BURST" validate:"gte=0"`
	Origins   []string `toml:"allowed_origins" json:"allowed_origins" env:"ALLOWED_ORIGINS" envSeparator:","`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:   "http://localhost:8000",
			UserAgent: "chatwidget/1.0",
		},
		Widget: WidgetConfig{
			Organization:     "ReCircle",
			HistoryMode:      "prior",
			EmptySuggestions: "clear",
			FallbackPrompt:   "Ask me anything about EPR, plastic waste, or recycling!",
			ReplayHistory:    true,
			OverlapPolicy:    "reject",
		},
		Storage: StorageConfig{
			Path:           "~/.chatwidget/state.db",
			PersistCookies: true,
		},
		Transcript: TranscriptConfig{
			Dir: ".",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.chatwidget/widget.log",
		},
		Stub: StubConfig{
			Addr:      ":8000",
			RateLimit: 10,
			Burst:     20,
			Origins:   []string{"*"},
		},
	}
}

// ContactPhraseFor returns the suggestion text that routes to the contact
// endpoint for an organization.
func ContactPhraseFor(organization string) string {
	return "connect me to " + strings.TrimSpace(organization)
}

// SetDefaults fills empty string fields from Default. Booleans are left
// alone; files are decoded on top of Default so unset keys keep theirs.
func (c *Config) SetDefaults() {
	d := Default()

	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = d.Backend.BaseURL
	}
	if c.Backend.UserAgent == "" {
		c.Backend.UserAgent = d.Backend.UserAgent
	}
	if c.Widget.Organization == "" {
		c.Widget.Organization = d.Widget.Organization
	}
	if strings.TrimSpace(c.Widget.ContactPhrase) == "" {
		c.Widget.ContactPhrase = ContactPhraseFor(c.Widget.Organization)
	}
	if c.Widget.HistoryMode == "" {
		c.Widget.HistoryMode = d.Widget.HistoryMode
	}
	if c.Widget.EmptySuggestions == "" {
		c.Widget.EmptySuggestions = d.Widget.EmptySuggestions
	}
	if c.Widget.OverlapPolicy == "" {
		c.Widget.OverlapPolicy = d.Widget.OverlapPolicy
	}
	if c.Storage.Path == "" {
		c.Storage.Path = d.Storage.Path
	}
	if c.Transcript.Dir == "" {
		c.Transcript.Dir = d.Transcript.Dir
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Stub.Addr == "" {
		c.Stub.Addr = d.Stub.Addr
	}
	if len(c.Stub.Origins) == 0 {
		c.Stub.Origins = d.Stub.Origins
	}

	c.Widget.HistoryMode = strings.ToLower(strings.TrimSpace(c.Widget.HistoryMode))
	c.Widget.EmptySuggestions = strings.ToLower(strings.TrimSpace(c.Widget.EmptySuggestions))
	c.Widget.OverlapPolicy = strings.ToLower(strings.TrimSpace(c.Widget.OverlapPolicy))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the configuration directory, ~/.chatwidget.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".chatwidget"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// LoadDotEnv loads KEY=VALUE pairs from the given files (default ./.env)
// into the process environment. Missing files are skipped; variables that
// are already set win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads ~/.chatwidget/config.toml, falling back to config.json and then
// to defaults. Environment overrides are applied last.
func Load() (*Config, error) {
	if path, err := ConfigPathTOML(); err == nil && fileExists(path) {
		return LoadFromPath(path)
	}
	if path, err := ConfigPathJSON(); err == nil && fileExists(path) {
		return LoadFromPath(path)
	}
	return finish(Default())
}

// LoadFromPath loads a specific file. The format follows the extension;
// anything other than .json is read as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = LoadJSON(cfg, path)
	} else {
		err = LoadTOML(cfg, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadTOML decodes a TOML file on top of cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// LoadJSON decodes a JSON file on top of cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes cfg to path with a short header.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# chatwidget configuration file\n")
	buf.WriteString("# Environment variables (CHATWIDGET_*) override these values.\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.WriteFileAtomic(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies CHATWIDGET_* variables. Only variables that are
// set replace the current value, for example:
//   - CHATWIDGET_BACKEND_URL: backend.base_url
//   - CHATWIDGET_BACKEND_TIMEOUT: backend.timeout (Go duration, "30s")
//   - CHATWIDGET_WIDGET_HISTORY_MODE: widget.history_mode
//   - CHATWIDGET_LOG_LEVEL: log.level
func (c *Config) ApplyEnvOverrides() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their TOML key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks every field and returns ValidateErrors on failure.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(ValidateErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   strings.TrimPrefix(fe.Namespace(), "Config."),
			Message: describe(fe),
		})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return fmt.Sprintf("%q is not a valid URL", fe.Value())
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", fe.Value(), fe.Param())
	case "hostname_port":
		return fmt.Sprintf("%q must be host:port", fe.Value())
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must not be negative"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
