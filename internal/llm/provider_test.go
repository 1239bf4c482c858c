package llm

import "testing"

func TestNewClient_Providers(t *testing.T) {
	tests := []struct {
		provider string
		wantType string
	}{
		{"", "openai"},
		{"groq", "openai"},
		{"openai", "openai"},
		{"ollama", "openai"},
		{"anthropic", "anthropic"},
	}
	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			c, err := NewClient(ProviderConfig{Provider: tt.provider, APIKey: "k"})
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			switch c.(type) {
			case *OpenAIClient:
				if tt.wantType != "openai" {
					t.Errorf("got OpenAIClient, want %s", tt.wantType)
				}
			case *AnthropicClient:
				if tt.wantType != "anthropic" {
					t.Errorf("got AnthropicClient, want %s", tt.wantType)
				}
			default:
				t.Errorf("unexpected client type %T", c)
			}
		})
	}
}

func TestNewClient_GroqDefaults(t *testing.T) {
	c, err := NewClient(ProviderConfig{Provider: "groq", APIKey: "k"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	oc := c.(*OpenAIClient)
	if oc.model != "llama-3.3-70b-versatile" {
		t.Errorf("model = %q", oc.model)
	}
	if oc.params != DefaultParams {
		t.Errorf("params = %+v, want %+v", oc.params, DefaultParams)
	}
}

func TestNewClient_Unknown(t *testing.T) {
	if _, err := NewClient(ProviderConfig{Provider: "carrier-pigeon"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestSplitAnthropic(t *testing.T) {
	system, turns := splitAnthropic([]Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "ACTION: CALC 1+1"},
		{Role: RoleUser, Content: "OBSERVATION: 2.0"},
	})
	if system != "persona" {
		t.Errorf("system = %q, want persona", system)
	}
	if len(turns) != 3 {
		t.Fatalf("got %d turns, want 3", len(turns))
	}
}

func TestToOpenAIMessages(t *testing.T) {
	msgs := toOpenAIMessages([]Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "yo"},
	})
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	if msgs[0].OfSystem == nil || msgs[1].OfUser == nil || msgs[2].OfAssistant == nil {
		t.Errorf("roles not mapped: %+v", msgs)
	}
}
