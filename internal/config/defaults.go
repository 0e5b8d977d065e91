package config

// defaultModels maps each provider to its default chat model.
var defaultModels = map[ProviderType]string{
	ProviderOpenAI: "gpt-4o-mini",
	ProviderGoogle: "gemini-1.5-flash",
	ProviderOllama: "llama3",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:       ProviderGoogle,
		Model:          defaultModels[ProviderGoogle],
		EmbeddingModel: "",
		DataDir:        ".auralis",
		Server: ServerConfig{
			Port:         8080,
			AllowAllCORS: false,
		},
		Chat: ChatConfig{
			StreamDelayMS: 30,
			LLMTimeoutSec: 10,
		},
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// DefaultModel returns the default chat model for the given provider.
// Falls back to the Google default for unknown providers.
func DefaultModel(provider ProviderType) string {
	if m, ok := defaultModels[provider]; ok {
		return m
	}
	return defaultModels[ProviderGoogle]
}
