package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "k")
	t.Setenv("DISCORD_BOT_TOKEN", "t")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxSteps != 5 {
		t.Errorf("MaxSteps = %d, want 5", cfg.MaxSteps)
	}
	if cfg.MemoryTurns != 10 {
		t.Errorf("MemoryTurns = %d, want 10", cfg.MemoryTurns)
	}
	if cfg.SearchTimeout != 10*time.Second {
		t.Errorf("SearchTimeout = %v, want 10s", cfg.SearchTimeout)
	}
	if cfg.LLMTemperature != 0.7 {
		t.Errorf("LLMTemperature = %v, want 0.7", cfg.LLMTemperature)
	}
	if got := cfg.RosterNames["member3"]; got != "@member3" {
		t.Errorf("RosterNames[member3] = %q, want @member3", got)
	}
	if cfg.AnnounceCron != "0 10 * * 6" {
		t.Errorf("AnnounceCron = %q", cfg.AnnounceCron)
	}
}

func TestLoad_GroqKeyFallback(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "groq-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLMAPIKey != "groq-key" {
		t.Errorf("LLMAPIKey = %q, want groq-key", cfg.LLMAPIKey)
	}
}

func TestValidate_MissingBoth(t *testing.T) {
	cfg := &Config{LLMProvider: "groq", MaxSteps: 5, MemoryTurns: 10}
	err := cfg.Validate(true)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, key := range []string{"LLM_API_KEY", "DISCORD_BOT_TOKEN"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name %s", err, key)
		}
	}
}

func TestValidate_TransportOptional(t *testing.T) {
	cfg := &Config{LLMProvider: "groq", LLMAPIKey: "k", MaxSteps: 5, MemoryTurns: 10}
	if err := cfg.Validate(false); err != nil {
		t.Errorf("Validate(false): %v", err)
	}
	if err := cfg.Validate(true); err == nil {
		t.Error("Validate(true) should require DISCORD_BOT_TOKEN")
	}
}

func TestValidate_OllamaNeedsNoKey(t *testing.T) {
	cfg := &Config{LLMProvider: "ollama", MaxSteps: 5, MemoryTurns: 10}
	if err := cfg.Validate(false); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate_BadSteps(t *testing.T) {
	cfg := &Config{LLMProvider: "groq", LLMAPIKey: "k", MaxSteps: 0, MemoryTurns: 10}
	if err := cfg.Validate(false); err == nil {
		t.Error("expected error for MaxSteps=0")
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{AnnounceTZ: "Local"}
	loc, err := cfg.Location()
	if err != nil || loc != time.Local {
		t.Errorf("Location() = %v, %v; want Local", loc, err)
	}

	cfg.AnnounceTZ = "UTC"
	loc, err = cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("Location() = %v, %v; want UTC", loc, err)
	}

	cfg.AnnounceTZ = "Not/AZone"
	if _, err := cfg.Location(); err == nil {
		t.Error("expected error for unknown zone")
	}
}
