package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGoogle ProviderType = "google"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level auralis configuration, corresponding to .auralis.yml.
type Config struct {
	Provider       ProviderType `yaml:"provider" koanf:"provider"`
	Model          string       `yaml:"model" koanf:"model"`
	EmbeddingModel string       `yaml:"embedding_model" koanf:"embedding_model"`
	DataDir        string       `yaml:"data_dir" koanf:"data_dir"`
	Server         ServerConfig `yaml:"server" koanf:"server"`
	Chat           ChatConfig   `yaml:"chat" koanf:"chat"`
	LogLevel       string       `yaml:"log_level" koanf:"log_level"`
	LogFormat      string       `yaml:"log_format" koanf:"log_format"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int  `yaml:"port" koanf:"port"`
	AllowAllCORS bool `yaml:"allow_all_cors" koanf:"allow_all_cors"`
}

// ChatConfig holds conversation pipeline settings.
type ChatConfig struct {
	// StreamDelayMS is the per-word typing delay applied while streaming
	// replies to the client.
	StreamDelayMS int `yaml:"stream_delay_ms" koanf:"stream_delay_ms"`
	// LLMTimeoutSec bounds the external completion call in the response
	// generator's first fallback tier.
	LLMTimeoutSec int `yaml:"llm_timeout_sec" koanf:"llm_timeout_sec"`
}
