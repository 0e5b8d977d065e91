package auralis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/limitless-infotech/auralis/internal/llm"
)

type fakeProvider struct {
	resp  *llm.CompletionResponse
	err   error
	calls int
}

func (f *fakeProvider) Complete(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls++
	return f.resp, f.err
}

func (f *fakeProvider) Name() string { return "fake" }

type fakeKnowledge struct {
	snippets []string
}

func (f *fakeKnowledge) Lookup(_ context.Context, _ string) []string { return f.snippets }

func pricingDetection() Detection {
	return Detection{Intent: "pricing", Confidence: 0.8}
}

func TestPricingRegionalMultipliers(t *testing.T) {
	r := NewResponder(nil, "", nil, 0, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		message  string
		contains []string
	}{
		{
			name:     "india professional",
			message:  "what's the professional package price in india",
			contains: []string{"USD 3,000", "special rates for Indian clients"},
		},
		{
			name:     "us starter",
			message:  "starter package price in the us",
			contains: []string{"USD 2,500"},
		},
		{
			name:     "uk enterprise",
			message:  "enterprise pricing in the uk",
			contains: []string{"GBP 12,000"},
		},
		{
			name:     "eu professional",
			message:  "professional plan cost in europe",
			contains: []string{"EUR 6,750"},
		},
		{
			name:     "canada starter",
			message:  "how much is the starter plan in canada",
			contains: []string{"CAD 2,375"},
		},
		{
			name:    "australia not mistaken for us",
			message: "starter package cost in australia",
			// "australia" contains the substring "us"; the region scan must
			// still pick the Australian multiplier.
			contains: []string{"AUD 2,250"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := r.Generate(ctx, tt.message, pricingDetection())
			for _, want := range tt.contains {
				if !strings.Contains(reply, want) {
					t.Errorf("reply missing %q:\n%s", want, reply)
				}
			}
		})
	}
}

func TestPricingTierList(t *testing.T) {
	r := NewResponder(nil, "", nil, 0, nil)

	reply := r.Generate(context.Background(), "tell me about pricing", pricingDetection())
	for _, want := range []string{"Starter: USD 2,500+", "Professional: USD 7,500+", "Enterprise: USD 15,000+"} {
		if !strings.Contains(reply, want) {
			t.Errorf("tier list missing %q:\n%s", want, reply)
		}
	}
	if strings.Contains(reply, "local market conditions") {
		t.Error("location note present without a location in the message")
	}

	reply = r.Generate(context.Background(), "pricing for clients in canada", pricingDetection())
	if !strings.Contains(reply, "local market conditions") {
		t.Errorf("expected location note for regional tier list:\n%s", reply)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{2500, "2,500"},
		{15000, "15,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.n); got != tt.want {
			t.Errorf("formatAmount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCannedIntentResponses(t *testing.T) {
	r := NewResponder(nil, "", nil, 0, nil)
	ctx := context.Background()

	tests := []struct {
		intent  string
		message string
		want    string
	}{
		{"services", "do you build websites", "React, Next.js"},
		{"services", "mobile app services", "React Native and Flutter"},
		{"portfolio", "show education projects", "e-learning platform"},
		{"portfolio", "projects", "120+ projects"},
		{"contact", "contact info", "info@limitlessinfotech.com"},
		{"about", "about the company", "innovation meets execution"},
		{"faq", "where is the faq", "FAQ section"},
		{"demo", "book a demo", "personalized demos"},
		{"integration", "payment integrations", "Stripe, PayPal"},
		{"web_development", "ecommerce site", "e-commerce platforms"},
		{"mobile_development", "ios app", "Swift and SwiftUI"},
		{"ai_solutions", "chatbot for support", "natural language processing"},
		{"partnership", "want to hire you", "careers page"},
	}

	for _, tt := range tests {
		reply := r.Generate(ctx, tt.message, Detection{Intent: tt.intent})
		if !strings.Contains(reply, tt.want) {
			t.Errorf("intent %s message %q: reply missing %q:\n%s", tt.intent, tt.message, tt.want, reply)
		}
	}
}

func TestGeneralUsesProviderWhenAvailable(t *testing.T) {
	provider := &fakeProvider{resp: &llm.CompletionResponse{Content: "  a thoughtful answer  "}}
	r := NewResponder(provider, "test-model", nil, 0, nil)

	reply := r.Generate(context.Background(), "something unusual", Detection{Intent: IntentGeneral})
	if reply != "a thoughtful answer" {
		t.Fatalf("reply = %q, want trimmed provider content", reply)
	}
	if provider.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.calls)
	}
}

func TestGeneralDegradeChain(t *testing.T) {
	failing := &fakeProvider{err: errors.New("upstream unavailable")}

	t.Run("keyword canned after provider failure", func(t *testing.T) {
		r := NewResponder(failing, "test-model", nil, 0, nil)
		reply := r.Generate(context.Background(), "what technology do you favor", Detection{Intent: IntentGeneral})
		if !strings.Contains(reply, "forefront of technology trends") {
			t.Fatalf("expected canned technology response, got:\n%s", reply)
		}
		if strings.Contains(reply, "upstream unavailable") {
			t.Fatal("provider error leaked into the reply")
		}
	})

	t.Run("knowledge lookup after canned miss", func(t *testing.T) {
		kb := &fakeKnowledge{snippets: []string{"first snippet", "second snippet"}}
		r := NewResponder(failing, "test-model", kb, 0, nil)
		reply := r.Generate(context.Background(), "zzz nothing canned here", Detection{Intent: IntentGeneral})
		if reply != "first snippet" {
			t.Fatalf("reply = %q, want first knowledge snippet", reply)
		}
	})

	t.Run("generic default at the bottom", func(t *testing.T) {
		r := NewResponder(failing, "test-model", &fakeKnowledge{}, 0, nil)
		reply := r.Generate(context.Background(), "zzz nothing canned here", Detection{Intent: IntentGeneral})
		if reply != genericDefaultResponse {
			t.Fatalf("reply = %q, want generic default", reply)
		}
	})

	t.Run("empty provider content advances the chain", func(t *testing.T) {
		empty := &fakeProvider{resp: &llm.CompletionResponse{Content: "   "}}
		r := NewResponder(empty, "test-model", nil, 0, nil)
		reply := r.Generate(context.Background(), "zzz nothing canned here", Detection{Intent: IntentGeneral})
		if reply != genericDefaultResponse {
			t.Fatalf("reply = %q, want generic default", reply)
		}
	})
}

func TestGeneralKeywordResponses(t *testing.T) {
	r := NewResponder(nil, "", nil, 0, nil)
	ctx := context.Background()

	tests := []struct {
		message string
		want    string
	}{
		{"what's your timeline usually", "2-4 weeks"},
		{"do you do maintenance", "post-launch support"},
		{"is it secure", "SSL/TLS encryption"},
	}
	for _, tt := range tests {
		reply := r.Generate(ctx, tt.message, Detection{Intent: IntentGeneral})
		if !strings.Contains(reply, tt.want) {
			t.Errorf("message %q: reply missing %q:\n%s", tt.message, tt.want, reply)
		}
	}
}
