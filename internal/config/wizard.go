package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to auralis! Let's configure your chat service.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider for fallback responses",
		Items: []string{"google", "openai", "ollama", "none"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	if providerStr == "none" {
		cfg.Provider = ""
		cfg.Model = ""
	} else {
		cfg.Provider = ProviderType(providerStr)
		cfg.Model = DefaultModel(cfg.Provider)
	}

	// 2. Model override.
	if cfg.Provider != "" {
		modelPrompt := promptui.Prompt{
			Label:   "Chat model",
			Default: cfg.Model,
		}
		model, err := modelPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("model prompt: %w", err)
		}
		cfg.Model = model
	}

	// 3. Semantic knowledge search.
	semanticPrompt := promptui.Select{
		Label: "Enable semantic knowledge search (requires an OpenAI API key)",
		Items: []string{"no", "yes"},
	}
	_, semantic, err := semanticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("semantic selection: %w", err)
	}
	if semantic == "yes" {
		cfg.EmbeddingModel = "text-embedding-3-small"
	}

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 5. Data directory.
	dataDirPrompt := promptui.Prompt{
		Label:   "Data directory (SQLite database and knowledge index)",
		Default: cfg.DataDir,
	}
	dataDir, err := dataDirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir prompt: %w", err)
	}
	cfg.DataDir = dataDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	if cfg.Provider != "" {
		if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" {
			fmt.Printf("Remember to set %s before starting the server.\n", envVar)
		}
	}

	return cfg, nil
}
