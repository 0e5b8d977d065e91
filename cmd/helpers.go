package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/limitless-infotech/auralis/internal/config"
	"github.com/limitless-infotech/auralis/internal/db"
	"github.com/limitless-infotech/auralis/internal/embeddings"
	"github.com/limitless-infotech/auralis/internal/knowledge"
	"github.com/limitless-infotech/auralis/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `auralis init` to create a config file", err)
	}
	return cfg, nil
}

// openDatabase ensures the data directory exists and opens the SQLite store.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	dbPath := filepath.Join(cfg.DataDir, "auralis.db")
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", dbPath, err)
	}
	return database, nil
}

// createLLMProviderFromConfig creates an LLM provider based on config settings.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	return llm.NewProvider(string(cfg.Provider), cfg.Model)
}

// createSemanticIndex builds the optional embedding-backed knowledge index.
// Embeddings always go through OpenAI regardless of the chat provider, so the
// index is skipped with a nil result when no OpenAI key is available.
func createSemanticIndex(cfg *config.Config) (*knowledge.SemanticIndex, error) {
	apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
	if apiKey == "" {
		return nil, nil
	}
	embedder := embeddings.NewOpenAIEmbedder(apiKey, cfg.EmbeddingModel)
	idx, err := knowledge.NewSemanticIndex(embedder)
	if err != nil {
		return nil, fmt.Errorf("creating semantic index: %w", err)
	}
	return idx, nil
}
