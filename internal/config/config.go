// Package config loads the crewdesk configuration. It is read once at
// startup and passed down explicitly.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/crewdesk/internal/database"
)

// Config represents the application configuration
type Config struct {
	Env         string          `yaml:"env"`
	Database    database.Config `yaml:"database"`
	Server      ServerConfig    `yaml:"server"`
	Auth        AuthConfig      `yaml:"auth"`
	Chat        ChatConfig      `yaml:"chat"`
	Stats       StatsConfig     `yaml:"stats"`
	Log         LogConfig       `yaml:"log"`
	KeyMappings KeyMappings     `yaml:"key_mappings"`
	ColorScheme ColorScheme     `yaml:"theme"`
}

// ServerConfig configures the HTTP server started by `crewdesk serve`
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	LegacyAPI       bool          `yaml:"legacy_api"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// AuthConfig guards the API. An empty secret disables auth.
type AuthConfig struct {
	JWTSecret    string   `yaml:"jwt_secret"`
	AllowedRoles []string `yaml:"allowed_roles"`
}

// Enabled reports whether requests must carry a token
func (a AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

// ChatConfig is the chat widget initialisation served to the frontend. The
// chat pipeline itself runs elsewhere.
type ChatConfig struct {
	WebhookURL          string    `yaml:"webhook_url" json:"webhookUrl"`
	Title               string    `yaml:"title" json:"title"`
	WelcomeMessage      string    `yaml:"welcome_message" json:"welcomeMessage"`
	ErrorMessage        string    `yaml:"error_message" json:"errorMessage"`
	Placeholder         string    `yaml:"placeholder" json:"placeholder"`
	MaxChars            int       `yaml:"max_chars" json:"maxChars"`
	StarterPrompts      []string  `yaml:"starter_prompts" json:"starterPrompts"`
	SampleQuestions     []string  `yaml:"sample_questions" json:"sampleQuestions"`
	Theme               ChatTheme `yaml:"theme" json:"theme"`
	UploadsEnabled      bool      `yaml:"uploads_enabled" json:"uploadsEnabled"`
	AcceptFileTypes     []string  `yaml:"accept_file_types" json:"acceptFileTypes"`
	MaxUploadMB         int       `yaml:"max_upload_mb" json:"maxUploadMB"`
	VoiceInputEnabled   bool      `yaml:"voice_input_enabled" json:"voiceInputEnabled"`
	MaxRecordingSeconds int       `yaml:"max_recording_seconds" json:"maxRecordingSeconds"`
}

// ChatTheme holds the widget colours
type ChatTheme struct {
	ButtonColor      string `yaml:"button_color" json:"buttonColor"`
	IconColor        string `yaml:"icon_color" json:"iconColor"`
	BackgroundColor  string `yaml:"background_color" json:"backgroundColor"`
	BotMessageColor  string `yaml:"bot_message_color" json:"botMessageColor"`
	UserMessageColor string `yaml:"user_message_color" json:"userMessageColor"`
}

// StatsConfig controls scheduled dashboard snapshots
type StatsConfig struct {
	// SnapshotSchedule is a cron expression, empty disables snapshots
	SnapshotSchedule string `yaml:"snapshot_schedule"`
}

// LogConfig controls the slog handler installed by logging.Init
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json, empty lets the command choose
	File   string `yaml:"file"`   // empty means stderr
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	cfg := base()
	cfg.applyDefaults()
	return cfg
}

// base is Default without the theme and key mappings, which are filled last
// so that a preset named in the file decides the colours.
func base() *Config {
	return &Config{
		Env: "development",
		Database: database.Config{
			Driver:          "sqlite",
			URL:             defaultDatabasePath(),
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			AutoMigrate:     true,
		},
		Server: ServerConfig{
			Addr:            ":5001",
			AllowedOrigins:  []string{"*"},
			LegacyAPI:       true,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Auth: AuthConfig{
			AllowedRoles: []string{"anon", "authenticated", "service_role"},
		},
		Chat: defaultChat(),
		Log:  LogConfig{Level: "info"},
	}
}

func defaultChat() ChatConfig {
	return ChatConfig{
		Title:          "SuperBot",
		WelcomeMessage: "Hey there! Ask me anything about tasks, projects, members or leaves.",
		ErrorMessage:   "The chat service is not connected yet",
		Placeholder:    "Type your query",
		MaxChars:       50,
		StarterPrompts: []string{"What are the pending tasks ?"},
		SampleQuestions: []string{
			"Show me all overdue tasks",
			"List all high-priority tasks that are in progress",
			"How many tasks were completed today?",
			"Show me all active projects",
			"List all team members with their roles",
			"Show all pending leave requests",
			"Who is on leave this week?",
			"How many daily tasks were logged today?",
			"Which project has the most pending tasks?",
		},
		Theme: ChatTheme{
			ButtonColor:      "#062b89",
			IconColor:        "#119cff",
			BackgroundColor:  "#010c27",
			BotMessageColor:  "#119cff",
			UserMessageColor: "#fff6f3",
		},
		UploadsEnabled:      true,
		AcceptFileTypes:     []string{"png", "jpeg", "jpg", "pdf", "txt"},
		MaxUploadMB:         5,
		VoiceInputEnabled:   true,
		MaxRecordingSeconds: 15,
	}
}

// Load builds the configuration from defaults, the YAML file, a .env file and
// the environment, later sources winning. An empty path means the XDG config
// location; a missing file there is not an error.
func Load(path string) (*Config, error) {
	cfg := base()

	explicit := path != ""
	if !explicit {
		p, err := getConfigPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	loadThemeFile(cfg)

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	cfg.applyEnv(os.LookupEnv)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// loadThemeFile merges a theme from CREWDESK_THEME_FILE when set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("CREWDESK_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadDotEnv reads CREWDESK_ENV_FILE or ./.env into the process environment.
// Variables already set are not overridden.
func loadDotEnv() error {
	file := os.Getenv("CREWDESK_ENV_FILE")
	if file == "" {
		file = ".env"
	}
	if err := godotenv.Load(file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", file, err)
	}
	return nil
}

// applyEnv overlays environment variables. lookup is os.LookupEnv outside tests.
func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	if v, ok := get("CREWDESK_ENV"); ok {
		c.Env = v
	}

	// DATABASE_URL is the conventional hosting variable, the prefixed one wins
	if v, ok := get("DATABASE_URL"); ok {
		c.Database.URL = v
		if strings.HasPrefix(v, "postgres://") || strings.HasPrefix(v, "postgresql://") {
			c.Database.Driver = "postgres"
		}
	}
	if v, ok := get("CREWDESK_DATABASE_URL"); ok {
		c.Database.URL = v
	}
	if v, ok := get("CREWDESK_DATABASE_DRIVER"); ok {
		c.Database.Driver = v
	}

	if v, ok := get("PORT"); ok {
		c.Server.Addr = ":" + v
	}
	if v, ok := get("CREWDESK_ADDR"); ok {
		c.Server.Addr = v
	}

	if v, ok := get("CREWDESK_JWT_SECRET"); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := get("CREWDESK_CHAT_WEBHOOK_URL"); ok {
		c.Chat.WebhookURL = v
	}
	if v, ok := get("CREWDESK_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
}

// Validate rejects settings that would fail later in a less obvious place
func (c *Config) Validate() error {
	if _, err := database.ParseDialect(c.Database.Driver); err != nil {
		return fmt.Errorf("invalid database.driver: %w", err)
	}
	if c.Database.URL == "" {
		return errors.New("database.url is required")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q: want text or json", c.Log.Format)
	}
	if c.Auth.Enabled() && len(c.Auth.AllowedRoles) == 0 {
		return errors.New("auth.allowed_roles must not be empty when auth.jwt_secret is set")
	}
	return nil
}

// IsProduction reports whether Env names a production deployment
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Save writes the config to path, or to the XDG location when path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// the file may hold a jwt secret
	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file location
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "crewdesk", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "crewdesk", "config.yaml"), nil
}

func defaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "crewdesk.db"
	}
	return filepath.Join(homeDir, ".crewdesk", "crewdesk.db")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":5001"
	}
}
