package types

import "time"

// HTTPConfig holds the HTTP settings used when talking to the summarization server.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client-side timeout;
	// only the network stack or the server bound the request.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "logsummarai/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ClientConfig holds settings for the uploader.
type ClientConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the scheme and host of the summarization server
	// (default "http://localhost:8000"). The upload path is appended to it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// RenderFormat selects how a summary is rendered.
type RenderFormat string

const (
	FormatTerminal RenderFormat = "terminal"
	FormatMarkdown RenderFormat = "markdown"
	FormatHTML     RenderFormat = "html"
	FormatJSON     RenderFormat = "json"
	FormatYAML     RenderFormat = "yaml"
)

// RenderConfig holds settings for the summary renderer.
type RenderConfig struct {
	// Format selects the output: terminal, markdown, html, json, or yaml.
	Format RenderFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Style is the glamour style for terminal output: auto, dark, light, notty, or ascii.
	Style string `json:"style" yaml:"style" mapstructure:"style"`

	// Width is the word-wrap width for terminal output (default 80).
	Width int `json:"width" yaml:"width" mapstructure:"width"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all settings of the client.
type Config struct {
	Server ClientConfig `json:"server" yaml:"server" mapstructure:"server"`
	Render RenderConfig `json:"render" yaml:"render" mapstructure:"render"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the configuration used when no file, env var, or flag
// overrides a key.
func DefaultConfig(version string) Config {
	return Config{
		Server: ClientConfig{
			HTTPConfig: HTTPConfig{UserAgent: "logsummarai/" + version},
			BaseURL:    "http://localhost:8000",
		},
		Render: RenderConfig{
			Format: FormatTerminal,
			Style:  "auto",
			Width:  80,
		},
		Log: LogConfig{Level: "warn"},
	}
}
