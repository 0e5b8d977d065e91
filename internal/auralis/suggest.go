package auralis

import "strings"

// maxSuggestions caps the suggestion list returned to the client.
const maxSuggestions = 6

// intentSuggestions maps each intent to its static follow-up suggestions.
var intentSuggestions = map[string][]string{
	"pricing":            {"Compare pricing plans", "Schedule consultation", "View pricing FAQ"},
	"services":           {"View our portfolio", "Schedule demo", "Get custom quote"},
	"portfolio":          {"View case studies", "Contact for similar project", "See testimonials"},
	"contact":            {"Fill contact form", "Call us directly", "Schedule meeting"},
	"about":              {"Meet our team", "View company story", "See client testimonials"},
	"web_development":    {"View web portfolio", "Get website quote", "See tech stack"},
	"mobile_development": {"View mobile apps", "iOS vs Android guide", "Get app quote"},
	"ai_solutions":       {"See AI examples", "Discuss automation needs", "Schedule AI demo"},
	"partnership":        {"View partnership options", "Schedule meeting", "Explore collaboration"},
	"integration":        {"View integration options", "API documentation", "Setup guide"},
	"demo":               {"Schedule personalized demo", "View product tour", "See live examples"},
	"faq":                {"Browse FAQ section", "Contact support", "Search knowledge base"},
}

// pageSuggestions maps page path substrings to the suggestion prepended
// when the visitor is on that page. Checked in this order.
var pageSuggestions = []struct {
	pathPart   string
	suggestion string
}{
	{"/services", "Get detailed service info"},
	{"/portfolio", "Explore case studies"},
	{"/contact", "Schedule consultation"},
	{"/about", "Learn our story"},
}

// Suggest returns the proactive follow-up suggestions for a classified
// message: the intent's static list, with a page-specific suggestion
// prepended when the visitor's current page warrants one. The prepend is
// idempotent and the result is capped at six entries.
func Suggest(det Detection, convCtx *Context) []string {
	base, ok := intentSuggestions[det.Intent]
	if !ok {
		base = defaultGeneralActions
	}
	suggestions := append([]string(nil), base...)

	if convCtx != nil && convCtx.CurrentPage != "" {
		page := strings.ToLower(convCtx.CurrentPage)
		for _, ps := range pageSuggestions {
			if strings.Contains(page, ps.pathPart) {
				if !contains(suggestions, ps.suggestion) {
					suggestions = append([]string{ps.suggestion}, suggestions...)
				} else {
					suggestions = moveToFront(suggestions, ps.suggestion)
				}
				break
			}
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func moveToFront(list []string, s string) []string {
	out := make([]string, 0, len(list))
	out = append(out, s)
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
