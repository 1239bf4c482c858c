package llm

import "fmt"

const (
	groqBaseURL   = "https://api.groq.com/openai/v1"
	ollamaBaseURL = "http://localhost:11434/v1"
)

type ProviderConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Params   Params
}

func NewClient(cfg ProviderConfig) (Client, error) {
	if cfg.Params == (Params{}) {
		cfg.Params = DefaultParams
	}
	switch cfg.Provider {
	case "groq", "":
		if cfg.Model == "" {
			cfg.Model = "llama-3.3-70b-versatile"
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = groqBaseURL
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Params), nil
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Params), nil
	case "ollama":
		if cfg.Model == "" {
			cfg.Model = "llama3.1"
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = ollamaBaseURL
		}
		return NewOpenAIClient("ollama", cfg.Model, cfg.BaseURL, cfg.Params), nil
	case "anthropic":
		return NewAnthropicClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Params), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
