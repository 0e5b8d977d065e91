// Package knowledge serves company fact snippets backing the response
// generator's lookup tier and the knowledge-base CLI.
package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/limitless-infotech/auralis/internal/db"
)

// lookupLimit caps how many snippets one lookup may return.
const lookupLimit = 3

// Item is one knowledge-base entry.
type Item struct {
	ID        int64     `json:"id" yaml:"-"`
	Category  string    `json:"category" yaml:"category"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Keywords  []string  `json:"keywords" yaml:"keywords"`
	CreatedAt time.Time `json:"createdAt" yaml:"-"`
}

// Semantic is the optional embedding-backed search tier. Implemented by
// SemanticIndex; nil disables the tier.
type Semantic interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

// Store loads knowledge items from sqlite once per process and answers
// lookups against the cached copy. An empty table is not cached, so items
// imported later are picked up on the next lookup.
type Store struct {
	db       *db.DB
	semantic Semantic
	logger   *zap.Logger

	mu     sync.Mutex
	items  []Item
	loaded bool
}

// NewStore creates a knowledge store. semantic may be nil.
func NewStore(database *db.DB, semantic Semantic, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: database, semantic: semantic, logger: logger}
}

// Lookup returns up to three content snippets relevant to the query. It
// never fails: database errors, an unavailable semantic tier, and a miss
// everywhere all degrade to the static category table or an empty slice.
func (s *Store) Lookup(ctx context.Context, query string) []string {
	lower := strings.ToLower(query)

	var snippets []string
	for _, item := range s.load(ctx) {
		category := strings.ToLower(item.Category)
		if strings.Contains(lower, category) ||
			strings.Contains(strings.ToLower(item.Content), lower) ||
			strings.Contains(category, lower) {
			snippets = append(snippets, item.Content)
		}
	}

	if len(snippets) == 0 && s.semantic != nil {
		results, err := s.semantic.Search(ctx, query, lookupLimit)
		if err != nil {
			s.logger.Warn("semantic knowledge search failed", zap.Error(err))
		} else {
			snippets = results
		}
	}

	if len(snippets) == 0 {
		snippets = staticFallback(lower)
	}

	if len(snippets) > lookupLimit {
		snippets = snippets[:lookupLimit]
	}
	return snippets
}

// load returns the cached items, querying sqlite on first use. A load that
// yields zero items is retried on the next call.
func (s *Store) load(ctx context.Context) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.items
	}

	items, err := s.queryAll(ctx)
	if err != nil {
		s.logger.Warn("loading knowledge base failed", zap.Error(err))
		return nil
	}
	if len(items) > 0 {
		s.items = items
		s.loaded = true
	}
	return items
}

// Items returns all knowledge items, bypassing the lookup cache.
func (s *Store) Items(ctx context.Context) ([]Item, error) {
	return s.queryAll(ctx)
}

func (s *Store) queryAll(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, title, content, keywords, created_at
		 FROM knowledge_base ORDER BY category, id`)
	if err != nil {
		return nil, fmt.Errorf("querying knowledge base: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		var keywords string
		if err := rows.Scan(&item.ID, &item.Category, &item.Title, &item.Content, &keywords, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning knowledge item: %w", err)
		}
		if err := json.Unmarshal([]byte(keywords), &item.Keywords); err != nil {
			item.Keywords = nil
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Import inserts items and invalidates the lookup cache. Returns the number
// of items written.
func (s *Store) Import(ctx context.Context, items []Item) (int, error) {
	written := 0
	for _, item := range items {
		if item.Category == "" || item.Content == "" {
			continue
		}
		keywords, err := json.Marshal(item.Keywords)
		if err != nil {
			keywords = []byte("[]")
		}
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO knowledge_base (category, title, content, keywords, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			item.Category, item.Title, item.Content, string(keywords), time.Now().UTC())
		if err != nil {
			return written, fmt.Errorf("inserting knowledge item %q: %w", item.Title, err)
		}
		written++
	}

	s.mu.Lock()
	s.loaded = false
	s.items = nil
	s.mu.Unlock()

	return written, nil
}

// Seed inserts the built-in company knowledge when the table is empty.
func (s *Store) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM knowledge_base`).Scan(&count); err != nil {
		return fmt.Errorf("counting knowledge items: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := s.Import(ctx, defaultItems)
	return err
}

// staticFallback answers from the hard-coded category table when the
// database has nothing for the query.
func staticFallback(lower string) []string {
	var snippets []string
	for _, entry := range staticKnowledge {
		if strings.Contains(lower, entry.category) {
			snippets = append(snippets, entry.items...)
		}
	}
	return snippets
}

// staticKnowledge is the last-resort lookup table. Categories are matched
// as substrings of the lowered query.
var staticKnowledge = []struct {
	category string
	items    []string
}{
	{"pricing", []string{
		"Our pricing is project-based and customized to your specific needs.",
		"We offer flexible payment terms including installments and milestones.",
		"All projects include 30-day post-launch support at no extra cost.",
	}},
	{"timeline", []string{
		"Simple websites: 2-4 weeks",
		"Complex applications: 3-6 months",
		"Enterprise solutions: 6+ months",
	}},
	{"technology", []string{
		"React, Next.js, Node.js, Python, AI/ML",
		"Cloud services: AWS, Azure, GCP",
		"Mobile: React Native, Flutter, Swift, Kotlin",
	}},
}

// defaultItems seed the knowledge base on first run.
var defaultItems = []Item{
	{
		Category: "company",
		Title:    "About Limitless Infotech",
		Content:  "Limitless Infotech Solution Pvt. Ltd. is a cutting-edge technology company specializing in innovative software development, web applications, mobile apps, and digital transformation. Founded by Faisal Khan, we bridge the gap between technology and business needs, delivering solutions that drive growth and efficiency.",
		Keywords: []string{"about", "company", "limitless", "faisal khan", "founded"},
	},
	{
		Category: "services",
		Title:    "Our Services",
		Content:  "We offer comprehensive technology services including: Custom Software Development, Web Application Development, Mobile App Development (iOS & Android), E-commerce Solutions, Cloud Services & Migration, API Development & Integration, Database Design & Management, UI/UX Design, Quality Assurance & Testing, DevOps & CI/CD, Digital Marketing Solutions, and IT Consulting.",
		Keywords: []string{"services", "software", "web", "mobile", "cloud", "api", "design", "testing"},
	},
	{
		Category: "pricing",
		Title:    "Pricing Information",
		Content:  "We offer flexible pricing models including fixed-price, time & materials, and dedicated team options. Our pricing is customized based on project scope and requirements. Contact us for a free consultation to discuss your project requirements and get a customized quote.",
		Keywords: []string{"pricing", "cost", "quote", "consultation", "price", "budget"},
	},
	{
		Category: "portfolio",
		Title:    "Our Portfolio",
		Content:  "Our portfolio includes successful projects in healthcare, finance, e-commerce, education, and logistics. We have delivered solutions for startups to enterprise clients, focusing on innovation and measurable results. We've delivered 120+ projects globally, partnering with startups and enterprises alike.",
		Keywords: []string{"portfolio", "projects", "work", "case studies", "examples"},
	},
	{
		Category: "contact",
		Title:    "Contact Information",
		Content:  "Get in touch with us through our contact form, email at Info@limitlessinfotech.com, or phone at +91 7710909492. We're located in Mumbai, Maharashtra, India. Our team typically responds within 2 hours during business hours.",
		Keywords: []string{"contact", "email", "phone", "address", "location", "reach"},
	},
	{
		Category: "technology",
		Title:    "Technology Stack",
		Content:  "We work with modern technologies including JavaScript/TypeScript, Python, Java, PHP, React, Angular, Vue.js, Node.js, Express, Django, Spring Boot, MongoDB, PostgreSQL, MySQL, AWS, Azure, Docker, Kubernetes, and more.",
		Keywords: []string{"technology", "stack", "javascript", "python", "react", "node", "database"},
	},
	{
		Category: "auralis",
		Title:    "Auralis - Our AI Assistant",
		Content:  "Auralis is our AI-powered assistant, representing innovation, intelligence, and seamless user interaction. Auralis serves as the intelligent interface for website & enterprise solutions, powered by advanced AI technology. With continuous self-learning and self-improvement capabilities, Auralis provides personalized assistance.",
		Keywords: []string{"auralis", "ai", "assistant", "chatbot", "intelligence"},
	},
}
