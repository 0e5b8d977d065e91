package auralis

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/limitless-infotech/auralis/internal/llm"
)

// KnowledgeSource supplies canned fact snippets for unmatched queries.
// It never fails: an unavailable backing store yields an empty result.
type KnowledgeSource interface {
	Lookup(ctx context.Context, query string) []string
}

// Responder turns a classified message into a reply. For general queries it
// walks a strict degrade chain: external completion, keyword canned text,
// knowledge lookup, generic default. No tier may fail the conversation.
type Responder struct {
	provider   llm.Provider
	model      string
	knowledge  KnowledgeSource
	llmTimeout time.Duration
	logger     *zap.Logger
}

// NewResponder creates a response generator. provider and knowledge may be
// nil; the corresponding degrade tiers are then skipped.
func NewResponder(provider llm.Provider, model string, knowledge KnowledgeSource, llmTimeout time.Duration, logger *zap.Logger) *Responder {
	if llmTimeout <= 0 {
		llmTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Responder{
		provider:   provider,
		model:      model,
		knowledge:  knowledge,
		llmTimeout: llmTimeout,
		logger:     logger,
	}
}

// regionPricing maps location keywords to a price multiplier, display
// currency, and note. Scanned in order, first match wins; the more
// specific region keywords come before the bare "us" so that e.g.
// "australia" does not match it.
type regionPricing struct {
	keywords   []string
	multiplier float64
	currency   string
	note       string
}

var pricingRegions = []regionPricing{
	{[]string{"india", "indian"}, 0.4, "USD", " (with special rates for Indian clients)"},
	{[]string{"australia"}, 0.9, "AUD", " (AUD pricing)"},
	{[]string{"canada"}, 0.95, "CAD", " (CAD pricing)"},
	{[]string{"united kingdom", "uk"}, 0.8, "GBP", " (GBP pricing)"},
	{[]string{"europe", "eu"}, 0.9, "EUR", " (EUR pricing)"},
	{[]string{"usa", "america", "us"}, 1.0, "USD", " (USD pricing)"},
}

// Base package prices in abstract currency units before the region
// multiplier is applied.
const (
	starterBase      = 2500
	professionalBase = 7500
	enterpriseBase   = 15000
)

// Generate produces the reply for a classified message. The only network
// call it may make is the bounded completion request in the general
// fallback tier; every error on that path is swallowed.
func (r *Responder) Generate(ctx context.Context, message string, det Detection) string {
	lower := strings.ToLower(message)

	switch det.Intent {
	case "pricing":
		return r.pricingResponse(lower)
	case "services":
		return servicesResponse(lower)
	case "portfolio":
		return portfolioResponse(lower)
	case "contact":
		return contactResponse
	case "about":
		return aboutResponse
	case "faq":
		return faqResponse
	case "demo":
		return demoResponse
	case "integration":
		return integrationResponse
	case "web_development":
		return webDevelopmentResponse(lower)
	case "mobile_development":
		return mobileDevelopmentResponse(lower)
	case "ai_solutions":
		return aiSolutionsResponse(lower)
	case "partnership":
		return partnershipResponse(lower)
	default:
		return r.generalResponse(ctx, message, lower)
	}
}

func (r *Responder) pricingResponse(lower string) string {
	multiplier := 1.0
	currency := "USD"
	locationNote := ""
	hasLocation := false

	for _, region := range pricingRegions {
		for _, kw := range region.keywords {
			if strings.Contains(lower, kw) {
				multiplier = region.multiplier
				currency = region.currency
				locationNote = region.note
				hasLocation = true
				break
			}
		}
		if hasLocation {
			break
		}
	}

	starter := formatAmount(int(math.Round(starterBase * multiplier)))
	professional := formatAmount(int(math.Round(professionalBase * multiplier)))
	enterprise := formatAmount(int(math.Round(enterpriseBase * multiplier)))

	if strings.Contains(lower, "starter") || strings.Contains(lower, "basic") {
		return fmt.Sprintf("Our Starter package starts at %s %s%s and includes a basic website with responsive design and SEO setup. It's perfect for small businesses getting started online. Would you like me to schedule a consultation to discuss your specific needs?", currency, starter, locationNote)
	}
	if strings.Contains(lower, "professional") || strings.Contains(lower, "advanced") {
		return fmt.Sprintf("The Professional package at %s %s%s includes advanced website development, comprehensive SEO, analytics setup, and 24/7 support. It's ideal for growing businesses that need robust online presence. I can help you compare this with our other packages.", currency, professional, locationNote)
	}
	if strings.Contains(lower, "enterprise") || strings.Contains(lower, "custom") {
		return fmt.Sprintf("Our Enterprise solutions start at %s %s%s and are fully customized to your business requirements. This includes custom software development, advanced integrations, and dedicated support. Let's discuss your project scope for a precise quote.", currency, enterprise, locationNote)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Our pricing is customized based on your project scope and requirements%s. We offer three main tiers:\n\n", locationNote)
	fmt.Fprintf(&b, "• Starter: %s %s+\n", currency, starter)
	fmt.Fprintf(&b, "• Professional: %s %s+\n", currency, professional)
	fmt.Fprintf(&b, "• Enterprise: %s %s+\n\n", currency, enterprise)
	b.WriteString("Each package can be tailored to your needs. What type of project are you interested in?")
	if hasLocation {
		b.WriteString("\n\nNote: Pricing may vary based on local market conditions and project complexity.")
	}
	return b.String()
}

// formatAmount renders an integer with comma thousands separators.
func formatAmount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func servicesResponse(lower string) string {
	if strings.Contains(lower, "web") || strings.Contains(lower, "website") {
		return "We specialize in modern web development using React, Next.js, and other cutting-edge technologies. Our websites are fast, responsive, and SEO-optimized. We can build anything from simple landing pages to complex e-commerce platforms. What kind of website do you need?"
	}
	if strings.Contains(lower, "mobile") || strings.Contains(lower, "app") {
		return "We develop native and cross-platform mobile apps for iOS and Android. Using React Native and Flutter, we create high-performance apps with great user experiences. Our mobile solutions include offline functionality, push notifications, and seamless integrations."
	}
	if strings.Contains(lower, "ai") || strings.Contains(lower, "automation") {
		return "Our AI and automation solutions help businesses streamline operations and improve efficiency. We implement chatbots, predictive analytics, workflow automation, and intelligent data processing. Auralis, our AI assistant, is a great example of our AI capabilities!"
	}
	return "We offer comprehensive digital solutions including web development, mobile apps, custom software, CRM systems, AI automation, and digital marketing. Each service is tailored to your business goals. Which area interests you most?"
}

func portfolioResponse(lower string) string {
	if strings.Contains(lower, "education") || strings.Contains(lower, "school") {
		return "We've developed several education technology solutions, including learning management systems, student portals, and interactive educational platforms. One notable project was a comprehensive e-learning platform for a university with 10,000+ users. Would you like to see more education projects?"
	}
	if strings.Contains(lower, "finance") || strings.Contains(lower, "bank") {
		return "Our finance projects include secure banking applications, fintech platforms, and financial management systems. We prioritize security and compliance in all our financial solutions. We recently completed a digital banking platform that handles millions in transactions daily."
	}
	if strings.Contains(lower, "healthcare") || strings.Contains(lower, "medical") {
		return "In healthcare, we've built patient management systems, telemedicine platforms, and health monitoring applications. All our healthcare solutions comply with HIPAA and other regulations. One project involved creating a comprehensive hospital management system."
	}
	return "We've successfully delivered 120+ projects across education, finance, healthcare, e-commerce, and technology sectors. Our portfolio showcases our expertise in modern technologies and our commitment to quality. Would you like to explore projects in a specific industry?"
}

const contactResponse = "You can reach us through our contact form, email us at info@limitlessinfotech.com, or call us at +1 (555) 123-4567. Our team typically responds within 2 hours during business hours. We offer free initial consultations to discuss your project. How would you like to get in touch?"

const aboutResponse = "Limitless Infotech is where innovation meets execution. Founded with a vision to transform businesses through technology, we've grown to serve 28K+ users with a 98% client retention rate. Our team combines technical expertise with business acumen to deliver exceptional results. Learn more about our story and values on our About page."

const faqResponse = "You can find answers to common questions in our FAQ section. We cover topics like our development process, pricing, timelines, support, and technical specifications. If you don't find what you're looking for, feel free to ask me directly!"

const demoResponse = "We offer personalized demos tailored to your business needs. During a demo, we'll showcase relevant technologies, discuss your requirements, and demonstrate how our solutions can benefit your organization. Schedule a demo through our contact form or by calling us directly."

const integrationResponse = "We provide seamless integrations with popular platforms including payment gateways (Stripe, PayPal), CRM systems (Salesforce, HubSpot), marketing tools (Google Analytics, Mailchimp), and enterprise software (SAP, Oracle). Our API-first approach ensures smooth data flow and scalability. What systems do you need to integrate with?"

func webDevelopmentResponse(lower string) string {
	if strings.Contains(lower, "ecommerce") || strings.Contains(lower, "shop") {
		return "We build robust e-commerce platforms using Shopify, WooCommerce, or custom solutions with React/Next.js. Our e-commerce sites include secure payment processing, inventory management, and analytics. We can integrate with major payment gateways and shipping providers."
	}
	if strings.Contains(lower, "cms") || strings.Contains(lower, "content") {
		return "We develop custom CMS solutions and headless CMS implementations using Strapi, Contentful, or custom-built systems. Our CMS platforms are user-friendly, SEO-optimized, and scalable for growing content needs."
	}
	return "Our web development expertise spans modern frameworks like React, Next.js, Vue.js, and traditional technologies. We create responsive, fast-loading websites with excellent SEO performance. Services include custom web applications, progressive web apps (PWAs), and API development."
}

func mobileDevelopmentResponse(lower string) string {
	if strings.Contains(lower, "ios") {
		return "We develop native iOS applications using Swift and SwiftUI, following Apple's design guidelines and best practices. Our iOS apps are optimized for performance and user experience, with seamless integration to iOS services."
	}
	if strings.Contains(lower, "android") {
		return "We build native Android applications using Kotlin and Jetpack Compose, ensuring compatibility across devices and Android versions. Our Android apps leverage the latest platform features for optimal performance."
	}
	return "We create cross-platform mobile applications using React Native and Flutter, allowing deployment to both iOS and Android from a single codebase. Our mobile solutions include offline functionality, push notifications, and native device integrations."
}

func aiSolutionsResponse(lower string) string {
	if strings.Contains(lower, "chatbot") {
		return "Our AI chatbots like Auralis use natural language processing to provide intelligent customer support, lead generation, and user engagement. We integrate chatbots with your existing systems for seamless automation."
	}
	if strings.Contains(lower, "predictive") || strings.Contains(lower, "analytics") {
		return "We implement predictive analytics solutions using machine learning algorithms to help businesses forecast trends, optimize operations, and make data-driven decisions. Our AI models are trained on your specific data for accurate insights."
	}
	return "Our AI solutions include intelligent automation, predictive analytics, natural language processing, and computer vision. We help businesses automate workflows, gain insights from data, and enhance customer experiences through AI-powered applications."
}

func partnershipResponse(lower string) string {
	if strings.Contains(lower, "hire") || strings.Contains(lower, "work") {
		return "We're always looking for talented individuals to join our team! We offer competitive salaries, remote work options, and opportunities for growth. Check our careers page for current openings or send us your resume."
	}
	return "We partner with businesses of all sizes to transform their operations through technology. Our partnership models include project-based engagements, retainer agreements, and strategic alliances. Let's discuss how we can collaborate on your next project."
}

// generalResponse walks the degrade chain for unmatched queries:
// external completion, keyword canned text, knowledge lookup, generic
// default. Order is fixed; every tier failure advances to the next.
func (r *Responder) generalResponse(ctx context.Context, message, lower string) string {
	if r.provider != nil {
		reqCtx, cancel := context.WithTimeout(ctx, r.llmTimeout)
		resp, err := r.provider.Complete(reqCtx, llm.CompletionRequest{
			Model: r.model,
			Messages: []llm.Message{
				{Role: llm.RoleSystem, Content: companySystemPrompt},
				{Role: llm.RoleUser, Content: message},
			},
			MaxTokens:   1024,
			Temperature: 0.7,
		})
		cancel()
		if err == nil && resp != nil && strings.TrimSpace(resp.Content) != "" {
			return strings.TrimSpace(resp.Content)
		}
		if err != nil {
			r.logger.Warn("completion fallback failed, using canned responses", zap.Error(err))
		}
	}

	if strings.Contains(lower, "technology") || strings.Contains(lower, "tech") {
		return "We stay at the forefront of technology trends, specializing in React, Next.js, Node.js, Python, AI/ML, cloud services (AWS, Azure, GCP), and modern development practices. What specific technology interests you?"
	}
	if strings.Contains(lower, "timeline") || strings.Contains(lower, "time") || strings.Contains(lower, "duration") {
		return "Project timelines vary based on complexity and scope. Simple websites take 2-4 weeks, complex applications 3-6 months, and enterprise solutions 6+ months. We provide detailed timelines during our consultation process."
	}
	if strings.Contains(lower, "support") || strings.Contains(lower, "maintenance") {
		return "We provide comprehensive post-launch support including bug fixes, updates, performance monitoring, and feature enhancements. Our support packages range from basic maintenance to 24/7 dedicated support."
	}
	if strings.Contains(lower, "security") || strings.Contains(lower, "secure") {
		return "Security is paramount in our development process. We implement industry-standard security practices including SSL/TLS encryption, secure authentication, data validation, and regular security audits. All our solutions comply with GDPR and other regulations."
	}

	if r.knowledge != nil {
		if snippets := r.knowledge.Lookup(ctx, message); len(snippets) > 0 {
			return snippets[0]
		}
	}

	return genericDefaultResponse
}

const genericDefaultResponse = "I'd be happy to help you learn more about Limitless Infotech and our services. We specialize in web development, mobile apps, AI automation, and digital transformation. What specific information are you looking for?"

// companySystemPrompt embeds the static company facts handed to the
// external completion service in the first fallback tier.
const companySystemPrompt = `You are Auralis, an AI assistant for Limitless Infotech, a software development company specializing in web development, mobile apps, AI automation, and digital transformation.

Company Information:
- We offer web development, mobile apps, custom software, CRM systems, AI automation
- Technologies: React, Next.js, Node.js, Python, AI/ML, cloud services (AWS, Azure, GCP)
- Project timelines: Simple websites (2-4 weeks), complex apps (3-6 months), enterprise (6+ months)
- Pricing: Customized based on project scope, with special rates for Indian clients
- Support: Comprehensive post-launch support including bug fixes and updates

Key Services:
- Web Development: React, Next.js, responsive design, SEO optimization, e-commerce
- Mobile Development: iOS, Android, React Native, Flutter
- AI Solutions: Chatbots, predictive analytics, workflow automation
- Custom Software: CRM systems, enterprise applications

Always be helpful, professional, and focus on how we can help transform businesses through technology. If the user asks about something not related to our services, politely redirect to our expertise areas.

Provide a helpful, contextual response based on our services and capabilities.`
