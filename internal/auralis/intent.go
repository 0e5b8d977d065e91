package auralis

import "strings"

// intentEntry pairs an intent with its trigger keywords and static
// follow-up actions.
type intentEntry struct {
	intent   string
	keywords []string
	actions  []string
}

// defaultIntentTable is scanned in order; the first entry with any keyword
// present in the message wins. The order is load-bearing: reordering
// entries changes classification results. Tests pin it.
var defaultIntentTable = []intentEntry{
	{
		intent:   "pricing",
		keywords: []string{"pricing", "cost", "fee", "price", "budget", "quote", "how much", "payment", "invoice"},
		actions:  []string{"Show pricing tiers", "Schedule consultation", "Compare plans"},
	},
	{
		intent:   "services",
		keywords: []string{"service", "offer", "provide", "do", "what do you do", "capabilities", "expertise"},
		actions:  []string{"View services", "Get portfolio", "Contact for custom solution"},
	},
	{
		intent:   "portfolio",
		keywords: []string{"portfolio", "work", "project", "case study", "examples", "previous work"},
		actions:  []string{"Browse portfolio", "View case studies", "See testimonials"},
	},
	{
		intent:   "contact",
		keywords: []string{"contact", "reach", "email", "phone", "call", "get in touch", "connect"},
		actions:  []string{"View contact info", "Fill contact form", "Schedule meeting"},
	},
	{
		intent:   "about",
		keywords: []string{"about", "company", "team", "who", "background", "story", "history"},
		actions:  []string{"Learn about us", "Meet the team", "View testimonials"},
	},
	{
		intent:   "faq",
		keywords: []string{"faq", "question", "help", "support", "how to", "guide"},
		actions:  []string{"Browse FAQ", "Search knowledge base", "Contact support"},
	},
	{
		intent:   "demo",
		keywords: []string{"demo", "trial", "test", "try", "show me", "see"},
		actions:  []string{"Schedule demo", "Request trial", "View product tour"},
	},
	{
		intent:   "integration",
		keywords: []string{"integration", "api", "connect", "sync", "third party", "external"},
		actions:  []string{"View integrations", "API documentation", "Setup guide"},
	},
	{
		intent:   "web_development",
		keywords: []string{"web", "website", "site", "online presence"},
		actions:  []string{"View web services", "See examples", "Get quote"},
	},
	{
		intent:   "mobile_development",
		keywords: []string{"mobile", "app", "ios", "android", "application"},
		actions:  []string{"View mobile apps", "See app examples", "Get quote"},
	},
	{
		intent:   "ai_solutions",
		keywords: []string{"ai", "artificial intelligence", "automation", "chatbot", "machine learning"},
		actions:  []string{"Learn about AI services", "See AI examples", "Discuss automation"},
	},
	{
		intent:   "partnership",
		keywords: []string{"hire", "work with", "partner", "collaboration", "employment"},
		actions:  []string{"View partnership options", "Schedule meeting", "Discuss opportunities"},
	},
}

// IntentGeneral is the fallback intent for messages no table entry matches.
const IntentGeneral = "general"

// defaultGeneralActions are returned with the fallback intent.
var defaultGeneralActions = []string{"Explore services", "View portfolio", "Contact us"}

const (
	matchedConfidence = 0.8
	fallbackConfidence = 0.5
)

// Classifier matches free-text messages against an ordered intent table.
// The zero value is not usable; construct with NewClassifier.
type Classifier struct {
	table []intentEntry
}

// NewClassifier creates a classifier over the default intent table.
func NewClassifier() *Classifier {
	return &Classifier{table: defaultIntentTable}
}

// Classify scans the table in order and returns the first intent with any
// keyword present (case-insensitive substring match). Entities are the
// matched keywords in table order. Classify is pure: no state, no side
// effects.
func (c *Classifier) Classify(message string) Detection {
	lower := strings.ToLower(message)

	for _, entry := range c.table {
		var matched []string
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			return Detection{
				Intent:           entry.intent,
				Confidence:       matchedConfidence,
				Entities:         matched,
				SuggestedActions: append([]string(nil), entry.actions...),
			}
		}
	}

	return Detection{
		Intent:           IntentGeneral,
		Confidence:       fallbackConfidence,
		Entities:         []string{},
		SuggestedActions: append([]string(nil), defaultGeneralActions...),
	}
}
