package auralis

import (
	"reflect"
	"testing"
)

func TestClassifyMatchesIntents(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name    string
		message string
		intent  string
	}{
		{"pricing", "How much does a website cost?", "pricing"},
		{"services", "What services can you provide?", "services"},
		{"portfolio", "Show me your previous work", "portfolio"},
		{"contact", "How can I reach your team?", "contact"},
		{"about", "Tell me the company story", "about"},
		{"faq", "I have a question regarding support", "faq"},
		{"demo", "Can I get a trial?", "demo"},
		{"integration", "is there an api for syncing?", "integration"},
		{"web", "I need a new website", "web_development"},
		{"mobile", "We want an android application", "mobile_development"},
		{"ai", "Interested in machine learning", "ai_solutions"},
		{"partnership", "We'd like to partner with you", "partnership"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			det := c.Classify(tt.message)
			if det.Intent != tt.intent {
				t.Fatalf("Classify(%q) intent = %q, want %q", tt.message, det.Intent, tt.intent)
			}
			if det.Confidence != 0.8 {
				t.Errorf("confidence = %v, want 0.8", det.Confidence)
			}
			if len(det.Entities) == 0 {
				t.Errorf("expected matched keywords as entities, got none")
			}
			if len(det.SuggestedActions) == 0 {
				t.Errorf("expected suggested actions, got none")
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := NewClassifier()

	// "price" and "app" both appear; pricing sits earlier in the table.
	det := c.Classify("what is the price of a mobile app")
	if det.Intent != "pricing" {
		t.Fatalf("intent = %q, want pricing (earlier table entry wins)", det.Intent)
	}

	// "website" and "api" both appear; integration precedes web_development.
	det = c.Classify("can the website talk to an external api")
	if det.Intent != "integration" {
		t.Fatalf("intent = %q, want integration (earlier table entry wins)", det.Intent)
	}
}

func TestClassifyFallback(t *testing.T) {
	c := NewClassifier()

	det := c.Classify("hello there")
	if det.Intent != IntentGeneral {
		t.Fatalf("intent = %q, want %q", det.Intent, IntentGeneral)
	}
	if det.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", det.Confidence)
	}
	if len(det.Entities) != 0 {
		t.Errorf("entities = %v, want empty", det.Entities)
	}
	want := []string{"Explore services", "View portfolio", "Contact us"}
	if !reflect.DeepEqual(det.SuggestedActions, want) {
		t.Errorf("actions = %v, want %v", det.SuggestedActions, want)
	}
}

func TestClassifyEntitiesAreMatchedKeywords(t *testing.T) {
	c := NewClassifier()

	det := c.Classify("I need a quote for my budget")
	want := []string{"budget", "quote"}
	if !reflect.DeepEqual(det.Entities, want) {
		t.Fatalf("entities = %v, want %v (keyword table order)", det.Entities, want)
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := NewClassifier()

	first := c.Classify("how much for a chatbot")
	first.SuggestedActions[0] = "mutated"
	first.Entities[0] = "mutated"

	second := c.Classify("how much for a chatbot")
	if second.SuggestedActions[0] == "mutated" || second.Entities[0] == "mutated" {
		t.Fatal("Classify shares internal slices across calls")
	}
	if second.Intent != "pricing" {
		t.Fatalf("intent = %q, want pricing", second.Intent)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier()
	if det := c.Classify("URGENT: PRICING INFO PLEASE"); det.Intent != "pricing" {
		t.Fatalf("intent = %q, want pricing", det.Intent)
	}
}
