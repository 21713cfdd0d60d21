package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat simulation specifics
	Gemini  GeminiConfig
	Chat    ChatConfig
	Session SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ChatRatePerMin  int
	BackofficeURL   string // base URL the agent tools call back into; defaults to self
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GeminiConfig configures the Generative Language API client.
type GeminiConfig struct {
	APIKey         string
	APIURL         string
	GroundingModel string // context-grounded, non-streaming call
	ToolModel      string // tool-capable, streaming call
	Timeout        time.Duration
}

// ChatConfig holds orchestration knobs.
type ChatConfig struct {
	TurnTimeout  time.Duration // shared budget for grounding + tool phases
	UseMockData  bool          // default when the request does not specify
}

// SessionConfig holds the simulated operator session identity.
type SessionConfig struct {
	UserID string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ChatRatePerMin = viper.GetInt("http_server.chat_rate_per_min")
	cfg.HTTPServer.BackofficeURL = viper.GetString("http_server.backoffice_url")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.GroundingModel = viper.GetString("gemini.grounding_model")
	cfg.Gemini.ToolModel = viper.GetString("gemini.tool_model")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Chat
	cfg.Chat.TurnTimeout = viper.GetDuration("chat.turn_timeout")
	cfg.Chat.UseMockData = viper.GetBool("chat.use_mock_data")

	// Session
	cfg.Session.UserID = viper.GetString("session.user_id")

	if cfg.HTTPServer.BackofficeURL == "" {
		cfg.HTTPServer.BackofficeURL = fmt.Sprintf("http://localhost:%d", cfg.HTTPServer.Port)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.chat_rate_per_min", 60)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.grounding_model", "gemini-2.0-flash-001")
	viper.SetDefault("gemini.tool_model", "gemini-2.0-flash-001")
	viper.SetDefault("gemini.timeout", 30*time.Second)
	viper.SetDefault("chat.turn_timeout", 30*time.Second)
	viper.SetDefault("chat.use_mock_data", false)
	viper.SetDefault("session.user_id", "cus_28X44")
}
