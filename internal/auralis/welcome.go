package auralis

import "strings"

// Welcome is a page-aware greeting shown when the chat widget opens.
type Welcome struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// pageWelcomes maps page path substrings to their welcome copy. Checked in
// this order; the first match wins.
var pageWelcomes = []struct {
	pathPart string
	welcome  Welcome
}{
	{"/pricing", Welcome{
		Message:     "Welcome to our Pricing page! I'm Auralis from Limitless Infotech. Our pricing is customized based on your needs. Most users ask about plan differences—would you like a quick comparison or help choosing the right tier?",
		Suggestions: []string{"Compare pricing plans", "Get a custom quote", "See pricing FAQ"},
	}},
	{"/services", Welcome{
		Message:     "Exploring our Services? Hi, I'm Auralis! We offer web development, mobile apps, custom software, CRM, and AI automation. Which service interests you most?",
		Suggestions: []string{"Web Development details", "Mobile App services", "Custom Software solutions"},
	}},
	{"/portfolio", Welcome{
		Message:     "Checking out our Portfolio? Welcome! I'm Auralis. We've delivered 120+ projects across education, finance, healthcare, and technology. Want to see projects in a specific industry?",
		Suggestions: []string{"Education projects", "Finance solutions", "Healthcare tech"},
	}},
	{"/contact", Welcome{
		Message:     "Ready to get in touch? Hi, I'm Auralis! We love hearing from potential clients. Our team typically responds within 2 hours. How can we help transform your business?",
		Suggestions: []string{"Schedule a consultation", "Request a quote", "General inquiry"},
	}},
	{"/about", Welcome{
		Message:     "Learning about Limitless Infotech? Hello, I'm Auralis! We're where innovation meets execution, serving 28K+ users with 98% client retention. Curious about our team or story?",
		Suggestions: []string{"Meet our team", "Company story", "Client testimonials"},
	}},
}

var defaultWelcome = Welcome{
	Message:     "Hello! I'm Auralis, your AI assistant from Limitless Infotech. I see you're on our website—let me help you find what you need. What brings you here today?",
	Suggestions: []string{"Explore services", "View portfolio", "Get pricing info"},
}

// WelcomeFor returns the contextual welcome for the given page route.
func WelcomeFor(currentPage string) Welcome {
	page := strings.ToLower(currentPage)
	for _, pw := range pageWelcomes {
		if strings.Contains(page, pw.pathPart) {
			return pw.welcome
		}
	}
	return defaultWelcome
}
